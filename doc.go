// Package bandstruct computes temperature- and composition-dependent
// electronic band-structure parameters for pure and binary-alloy
// semiconductors.
//
// 🚀 What is bandstruct?
//
//	A small, deterministic parameter layer that brings together:
//		• Material database: pure semiconductors & two-component alloys (YAML-seeded)
//		• Pure resolver: valence bands, Varshni band gaps, conduction-band edges, Γ mass
//		• Alloy resolver: linear mixing + quadratic bowing over two components
//		• Scalar physics: Varshni equation, Fermi–Dirac integral approximations
//		• Loaders for nextnano simulation output tables
//
// ✨ Why choose bandstruct?
//
//   - Explicit precedence – every parameter resolves override-or-default, per key
//   - Immutable database – loaded once, safe for concurrent readers, never mutated
//   - Pure queries – identical inputs always yield identical energies
//   - Typed overrides – no stringly-keyed dictionaries, unset is distinct from zero
//
// Everything is organized under focused subpackages:
//
//	physconst/ — physical constants & unit conversions
//	semimath/  — Varshni gap equation, Fermi–Dirac integral approximations
//	matdb/     — pure/alloy material database, YAML seed & loaders
//	bands/     — Pure and Alloy band-parameter resolvers (the heart of the module)
//	nextnano/  — fixed-format simulation-output table loaders
//	cmd/bandstruct — CLI for band tables, alloy sweeps and database listings
//
// Quick sketch of the band picture for one material:
//
//	    CB(Γ)  ─────   conduction edge = valence band + Varshni gap
//	              ↑ Eg(Γ,T)
//	    VBH/VBL ─────   heavy/light holes (degenerate edge)
//	    VBSO    ─────   split off by Δso
//
// Dive into the per-package docs for formulas, options and error contracts.
//
//	go get github.com/heterolab/bandstruct
package bandstruct
