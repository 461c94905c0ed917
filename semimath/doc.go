// Package semimath implements the scalar physics functions consumed by the
// band-structure resolvers: the Varshni temperature dependence of band gaps
// and rational approximations of the Fermi–Dirac integrals of order ±1/2.
//
// What:
//
//   - Varshni(temp, eg0, alpha, beta): Eg(T) = Eg0 − α·T²/(T+β).
//   - FermiDiracHalf / FermiDiracMinusHalf: F½(x) and F₋½(x) via two
//     disjoint analytic branches selected at x = 2: a Boltzmann-corrected
//     exponential form below, a Sommerfeld-type power form above.
//   - FermiDirac(order, x): dispatch on the Order enum.
//
// Why:
//
//   - Band gaps shrink with temperature; Varshni is the standard empirical
//     law and reduces exactly to Eg0 at T = 0.
//   - Density-of-states integrals need F±½ but rarely need them to more
//     than a few per mil; the closed-form branches avoid any quadrature.
//
// Errors:
//
//   - ErrUnsupportedOrder: FermiDirac called with an order other than
//     MinusHalf or Half.
//
// All functions are pure: no state, no allocation, bit-identical results
// for identical inputs.
package semimath
