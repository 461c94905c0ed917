// Package bands resolves band-structure quantities (valence-band edges,
// Varshni band gaps, conduction-band edges and effective masses) for
// pure semiconductors and two-component alloys.
//
// What:
//
//   - Pure: answers queries for one semiconductor from a matdb.DB record,
//     layered under a typed Overrides set. Every parameter resolves
//     independently: override if set, else database default, else
//     ErrMissingParameter.
//   - Alloy: composes two Pure resolvers (component A and B, each with its
//     own Overrides) and interpolates every quantity over the composition
//     fraction x with the universal law
//
//     P(x) = x·P_A + (1−x)·P_B − x·(1−x)·bow
//
//     where bow defaults to 0 (pure linear mixing). Alloy-level overrides
//     may also assign composite quantities directly, bypassing
//     interpolation entirely.
//   - EnergyShift: an override that moves every returned band POSITION by
//     a constant. Band GAPS are never shifted; the asymmetry is
//     deliberate and relied upon by heterostructure band lineups.
//
// Why:
//
//   - Band lineups for heterostructure design need consistent, reproducible
//     parameter sets with selective adjustments: a caller overrides one
//     Varshni α without touching the rest of the record.
//
// Semantics worth knowing:
//
//   - Heavy- and light-hole queries return the same band-edge energy. The
//     edge is degenerate in this model; only the masses differ. A split
//     (strain, confinement) is a future refinement, not a current one.
//   - Pure.ConductionBand(v, T) = HeavyHoleValenceBand() + BandGap(v, T):
//     the shift enters once, through the valence-band term.
//   - x is conventionally in [0, 1] and refers to the first alloy
//     component; it is intentionally not clamped.
//   - All queries are pure functions of (database, overrides, x, T):
//     idempotent, no caching, no internal state.
//
// Errors:
//
//   - matdb.ErrUnknownMaterial / matdb.ErrUnknownAlloy: unknown name,
//     surfaced at construction.
//   - ErrMissingParameter: neither override nor database supplies a
//     required key.
//   - ErrSweepPoints: a composition sweep with fewer than two points.
//
// Complexity: every query is O(1); sweeps are O(n) in the grid size.
package bands
