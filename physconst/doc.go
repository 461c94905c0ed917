// Package physconst provides the physical constants and unit conversions
// used across bandstruct simulations.
//
// What:
//
//   - SI constants: electron rest mass, reduced Planck constant,
//     elementary charge, Boltzmann constant.
//   - Semiconductor-friendly variants: Boltzmann constant in eV/K,
//     eV↔J and nm↔m conversion factors.
//   - ThermalEnergy(T): kT in eV for a given absolute temperature.
//
// Why:
//
//   - Band energies in this module are carried in electron-volts and
//     lattice constants in nanometres; one shared table keeps every
//     formula on the same footing.
//
// All values are untyped constants; there is no state and no error path.
package physconst
