package bands

import "github.com/heterolab/bandstruct/matdb"

// Valley re-exports the conduction-valley enum from matdb so callers of
// the resolver API need a single import.
type Valley = matdb.Valley

// Conduction-band valleys.
const (
	Gamma = matdb.Gamma
	L     = matdb.L
	X     = matdb.X
)

// DefaultTemperature is the temperature [K] conventionally used for
// gap-dependent queries when a caller has no better value.
const DefaultTemperature = 300.0

// referenceTemperature anchors the lattice-constant expansion; database
// lattice constants are tabulated at 300 K.
const referenceTemperature = 300.0

// Float returns a pointer to v, for filling optional override fields
// inline.
func Float(v float64) *float64 { return &v }

// Mass returns a pointer to a principal-axis mass triple, for filling
// optional override fields inline.
func Mass(mx, my, mz float64) *[3]float64 { return &[3]float64{mx, my, mz} }

// ValleyOverrides adjusts the per-valley parameters of one material.
// Nil fields fall through to the database record.
type ValleyOverrides struct {
	// Gap0 replaces the T = 0 K band gap [eV].
	Gap0 *float64
	// Alpha replaces the Varshni α [eV/K].
	Alpha *float64
	// Beta replaces the Varshni β [K].
	Beta *float64
	// Mass replaces the effective-mass triple [m0].
	Mass *[3]float64
}

// Overrides adjusts the parameters of one pure semiconductor without
// touching the database. Each field is consulted independently before
// the database default; nil means "use the default".
type Overrides struct {
	// ValenceBand replaces the valence-band-top energy [eV].
	ValenceBand *float64
	// SpinOrbit replaces the spin–orbit splitting [eV].
	SpinOrbit *float64
	// EnergyShift moves every returned band POSITION by this amount [eV].
	// Gaps are unaffected. Defaults to 0.
	EnergyShift *float64
	// Lattice and LatticeTempCoeff replace the lattice parameters [Å, Å/K].
	Lattice          *float64
	LatticeTempCoeff *float64
	// Gamma, LValley and XValley adjust the per-valley parameters.
	Gamma   ValleyOverrides
	LValley ValleyOverrides
	XValley ValleyOverrides
}

// valley returns the per-valley override block for v; out-of-range
// valleys get an empty block.
func (o Overrides) valley(v Valley) ValleyOverrides {
	switch v {
	case Gamma:
		return o.Gamma
	case L:
		return o.LValley
	case X:
		return o.XValley
	default:
		return ValleyOverrides{}
	}
}

// shift returns the energy shift, defaulting to 0.
func (o Overrides) shift() float64 {
	if o.EnergyShift == nil {
		return 0
	}

	return *o.EnergyShift
}

// AlloyOverrides adjusts an alloy at the composite level. Bowing fields
// replace the alloy record's coefficients; ValenceBand and the Gap fields
// assign composite quantities directly, bypassing interpolation entirely
// (no shift is applied on that path).
type AlloyOverrides struct {
	// EnergyShift moves every returned interpolated band position [eV].
	EnergyShift *float64
	// BowValence replaces the valence-band bowing coefficient [eV].
	BowValence *float64
	// BowGamma, BowL and BowX replace the per-valley bowing coefficients [eV].
	BowGamma *float64
	BowL     *float64
	BowX     *float64
	// ValenceBand assigns the alloy valence-band edge directly [eV].
	ValenceBand *float64
	// GapGamma, GapL and GapX assign the alloy band gaps directly [eV].
	GapGamma *float64
	GapL     *float64
	GapX     *float64
}

// shift returns the alloy-level energy shift, defaulting to 0.
func (o AlloyOverrides) shift() float64 {
	if o.EnergyShift == nil {
		return 0
	}

	return *o.EnergyShift
}

// gap returns the directly-assigned gap for valley v, or nil.
func (o AlloyOverrides) gap(v Valley) *float64 {
	switch v {
	case Gamma:
		return o.GapGamma
	case L:
		return o.GapL
	case X:
		return o.GapX
	default:
		return nil
	}
}

// bowing resolves the bowing coefficient for valley v: override, else
// record, else 0.
func (o AlloyOverrides) bowing(v Valley, rec matdb.AlloyRecord) float64 {
	var ovr *float64
	switch v {
	case Gamma:
		ovr = o.BowGamma
	case L:
		ovr = o.BowL
	case X:
		ovr = o.BowX
	}
	if ovr != nil {
		return *ovr
	}

	return rec.Bowing(v)
}

// valenceBowing resolves the valence-band bowing: override, else record,
// else 0.
func (o AlloyOverrides) valenceBowing(rec matdb.AlloyRecord) float64 {
	if o.BowValence != nil {
		return *o.BowValence
	}

	return rec.ValenceBowing()
}
