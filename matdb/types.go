package matdb

// Valley identifies a conduction-band minimum in momentum space. Each
// valley carries its own gap, Varshni parameters, degeneracy and
// effective-mass triple.
type Valley int

const (
	// Gamma is the zone-center (Γ) conduction-band minimum.
	Gamma Valley = iota
	// L is the L-point conduction-band minimum.
	L
	// X is the X-point conduction-band minimum.
	X
)

// Valleys lists all conduction-band valleys in canonical order, handy for
// iteration in reports and tests.
var Valleys = [...]Valley{Gamma, L, X}

// String returns the conventional valley label.
func (v Valley) String() string {
	switch v {
	case Gamma:
		return "Gamma"
	case L:
		return "L"
	case X:
		return "X"
	default:
		return "Valley(?)"
	}
}

// ValleyParams holds the per-valley band parameters of a pure
// semiconductor. Nil fields are absent from the database.
type ValleyParams struct {
	// Gap0 is the T = 0 K band gap from this valley to the valence-band
	// edge [eV].
	Gap0 *float64 `yaml:"gap0,omitempty"`
	// Alpha is the Varshni α parameter [eV/K].
	Alpha *float64 `yaml:"alpha,omitempty"`
	// Beta is the Varshni β parameter [K].
	Beta *float64 `yaml:"beta,omitempty"`
	// Degeneracy is the valley degeneracy including spin.
	Degeneracy *float64 `yaml:"degeneracy,omitempty"`
	// Mass is the effective mass along the three principal axes, in units
	// of the free-electron mass.
	Mass *[3]float64 `yaml:"mass,omitempty,flow"`
}

// MaterialRecord describes one pure semiconductor. All fields are
// optional; a resolver query that needs an absent field fails with
// bands.ErrMissingParameter unless an override supplies it.
type MaterialRecord struct {
	// Lattice is the lattice constant at 300 K [Å].
	Lattice *float64 `yaml:"lattice,omitempty"`
	// LatticeTempCoeff is the lattice-constant temperature coefficient [Å/K].
	LatticeTempCoeff *float64 `yaml:"lattice_temp,omitempty"`
	// ValenceBand is the energy of the valence-band top [eV].
	ValenceBand *float64 `yaml:"valence_band,omitempty"`
	// SpinOrbit is the spin–orbit splitting of the valence band [eV].
	SpinOrbit *float64 `yaml:"spin_orbit,omitempty"`
	// Gamma, LValley and XValley carry the per-valley band parameters.
	Gamma   ValleyParams `yaml:"gamma,omitempty"`
	LValley ValleyParams `yaml:"l,omitempty"`
	XValley ValleyParams `yaml:"x,omitempty"`
	// Luttinger holds the (γ1, γ2, γ3) valence-band parameters.
	Luttinger *[3]float64 `yaml:"luttinger,omitempty,flow"`
}

// Valley returns the per-valley parameter block for v. An out-of-range
// valley yields an empty block, which downstream resolution reports as a
// missing parameter.
func (m MaterialRecord) Valley(v Valley) ValleyParams {
	switch v {
	case Gamma:
		return m.Gamma
	case L:
		return m.LValley
	case X:
		return m.XValley
	default:
		return ValleyParams{}
	}
}

// AlloyRecord describes a binary alloy of two pure semiconductors. The
// composition fraction x used by the resolvers refers to the FIRST
// component; x = 1 reproduces Components[0], x = 0 reproduces
// Components[1].
type AlloyRecord struct {
	// Components names the two pure semiconductors forming the alloy.
	Components [2]string `yaml:"components,flow"`
	// BowValence is the valence-band bowing coefficient [eV].
	BowValence *float64 `yaml:"bow_valence,omitempty"`
	// BowGamma, BowL and BowX are the per-valley bowing coefficients [eV].
	BowGamma *float64 `yaml:"bow_gamma,omitempty"`
	BowL     *float64 `yaml:"bow_l,omitempty"`
	BowX     *float64 `yaml:"bow_x,omitempty"`
}

// Bowing returns the bowing coefficient for valley v, or 0 when the
// record omits it (pure linear mixing).
func (a AlloyRecord) Bowing(v Valley) float64 {
	var bow *float64
	switch v {
	case Gamma:
		bow = a.BowGamma
	case L:
		bow = a.BowL
	case X:
		bow = a.BowX
	}
	if bow == nil {
		return 0
	}

	return *bow
}

// ValenceBowing returns the valence-band bowing coefficient, or 0 when
// the record omits it.
func (a AlloyRecord) ValenceBowing() float64 {
	if a.BowValence == nil {
		return 0
	}

	return *a.BowValence
}
