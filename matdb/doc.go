// Package matdb holds the material-parameter database for bandstruct:
// pure semiconductors and two-component alloys, keyed by name.
//
// What:
//
//   - MaterialRecord: lattice constant (+ temperature coefficient),
//     valence-band energy, spin–orbit splitting, per-valley (Γ, L, X)
//     Varshni parameters, degeneracy and effective-mass triples, and
//     Luttinger parameters. Every field is optional; unset is distinct
//     from zero (pointer fields).
//   - AlloyRecord: two component material names plus bowing coefficients
//     for the valence band and each conduction valley (0 when absent).
//   - DB: an immutable lookup table. Builtin() returns the embedded seed
//     database (GaAs, AlAs, AlGaAs; Vurgaftman 2001 band parameters,
//     Wei–Zunger valence offsets); Load/LoadFile accept caller databases
//     with the same YAML schema.
//
// Why:
//
//   - The database is configuration, not code: one authoritative YAML
//     schema, loaded once at startup and never mutated. Resolvers in
//     package bands hold a *DB reference and layer overrides on top.
//
// Schema (YAML):
//
//	pure:
//	  GaAs:
//	    lattice: 5.65325          # Å, at 300 K
//	    lattice_temp: 3.88e-5     # Å/K
//	    valence_band: 1.46        # eV
//	    spin_orbit: 0.341         # eV
//	    gamma: {gap0: 1.519, alpha: 0.5405e-3, beta: 204.0, degeneracy: 2, mass: [0.067, 0.067, 0.067]}
//	    l:     {gap0: 1.815, ...}
//	    x:     {gap0: 1.981, ...}
//	    luttinger: [6.98, 2.06, 2.93]
//	alloys:
//	  AlGaAs:
//	    components: [AlAs, GaAs]  # x is the fraction of the FIRST component
//	    bow_valence: 0.0
//	    bow_gamma: 0.0
//
// Unknown fields, duplicate keys and alloys referencing absent components
// are load errors; superseded historical variants of a record are never
// merged.
//
// Errors:
//
//   - ErrUnknownMaterial: pure-material name absent from the database.
//   - ErrUnknownAlloy: alloy name absent from the database.
//   - ErrBadDatabase: malformed or inconsistent database input.
package matdb
