// Package nextnano loads simulation results from nextnano³ output files
// into plain numeric tables.
//
// What:
//
//   - ParseTable: whitespace-separated numeric tables (the common nextnano
//     output layout) into column slices; '#' comments and blank lines are
//     skipped.
//   - LoadWavefunctions: the single-band Schrödinger output
//     (sg_1band1/cb001_qc001_sg001_deg001_neu_cmplx.dat) as a position
//     grid plus one amplitude column per subband.
//
// Why:
//
//   - Band lineups computed by package bands feed nextnano simulations;
//     reading the wavefunctions back closes the loop for plotting and
//     post-processing.
//
// Errors:
//
//   - ErrEmptyTable: no numeric rows in the input.
//   - ErrRaggedRow: a row with a different column count than the first.
//   - ErrBadValue: a field that does not parse as a float.
//
// Loaders never log; failures carry file and line context and are
// returned to the caller.
package nextnano
