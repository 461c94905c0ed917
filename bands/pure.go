package bands

import (
	"fmt"

	"github.com/heterolab/bandstruct/matdb"
	"github.com/heterolab/bandstruct/semimath"
)

// Pure resolves band-structure quantities for one pure semiconductor.
//
// A Pure is a cheap value object: it captures the database record and the
// caller's Overrides at construction and carries no further state. Every
// query is a pure function of those inputs (plus temperature), so a Pure
// may be queried concurrently and repeatedly with identical results.
type Pure struct {
	name string
	rec  matdb.MaterialRecord
	ovr  Overrides
}

// NewPure builds a resolver for the named semiconductor in db, layering
// ovr (may be nil) over the database defaults. An unknown name fails
// immediately with matdb.ErrUnknownMaterial.
func NewPure(db *matdb.DB, name string, ovr *Overrides) (*Pure, error) {
	rec, err := db.Pure(name)
	if err != nil {
		return nil, err
	}

	p := &Pure{name: name, rec: rec}
	if ovr != nil {
		p.ovr = *ovr
	}

	return p, nil
}

// Name returns the material name this resolver was built for.
func (p *Pure) Name() string { return p.name }

// resolve applies the uniform precedence rule for one parameter key:
// override if set, else database default, else ErrMissingParameter.
func (p *Pure) resolve(key string, ovr, def *float64) (float64, error) {
	if ovr != nil {
		return *ovr, nil
	}
	if def != nil {
		return *def, nil
	}

	return 0, fmt.Errorf("%w: %s of %q", ErrMissingParameter, key, p.name)
}

// HeavyHoleValenceBand returns the heavy-hole valence-band edge [eV]:
// the resolved valence-band energy plus the energy shift.
func (p *Pure) HeavyHoleValenceBand() (float64, error) {
	vb, err := p.resolve("valence_band", p.ovr.ValenceBand, p.rec.ValenceBand)
	if err != nil {
		return 0, err
	}

	return vb + p.ovr.shift(), nil
}

// LightHoleValenceBand returns the light-hole valence-band edge [eV].
// The edge is degenerate with the heavy hole in this model (only the
// masses differ); a strain/confinement split is a future refinement.
func (p *Pure) LightHoleValenceBand() (float64, error) {
	return p.HeavyHoleValenceBand()
}

// SpinOrbitValenceBand returns the split-off valence-band edge [eV]:
// valence band minus spin–orbit splitting, plus the energy shift. Each
// term resolves independently through the precedence rule.
func (p *Pure) SpinOrbitValenceBand() (float64, error) {
	vb, err := p.resolve("valence_band", p.ovr.ValenceBand, p.rec.ValenceBand)
	if err != nil {
		return 0, err
	}
	so, err := p.resolve("spin_orbit", p.ovr.SpinOrbit, p.rec.SpinOrbit)
	if err != nil {
		return 0, err
	}

	return vb - so + p.ovr.shift(), nil
}

// BandGap returns the gap [eV] between valley v and the valence-band edge
// at the absolute temperature temp [K], via the Varshni law. The three
// Varshni parameters resolve independently, so a caller may override just
// α while Eg0 and β fall through to the database.
//
// The energy shift is deliberately NOT applied here: it moves band
// positions, never gaps.
func (p *Pure) BandGap(v Valley, temp float64) (float64, error) {
	vo := p.ovr.valley(v)
	vp := p.rec.Valley(v)

	gap0, err := p.resolve(valleyKey(v)+".gap0", vo.Gap0, vp.Gap0)
	if err != nil {
		return 0, err
	}
	alpha, err := p.resolve(valleyKey(v)+".alpha", vo.Alpha, vp.Alpha)
	if err != nil {
		return 0, err
	}
	beta, err := p.resolve(valleyKey(v)+".beta", vo.Beta, vp.Beta)
	if err != nil {
		return 0, err
	}

	return semimath.Varshni(temp, gap0, alpha, beta), nil
}

// ConductionBand returns the position [eV] of valley v at temperature
// temp: heavy-hole valence band plus band gap. The shift enters exactly
// once, through the valence-band term.
func (p *Pure) ConductionBand(v Valley, temp float64) (float64, error) {
	vb, err := p.HeavyHoleValenceBand()
	if err != nil {
		return 0, err
	}
	gap, err := p.BandGap(v, temp)
	if err != nil {
		return 0, err
	}

	return vb + gap, nil
}

// GammaMass returns the Γ-valley conduction-band effective mass in
// free-electron-mass units, without nonparabolicity. Only the principal
// (100) component of the mass triple is exposed; an orientation-dependent
// tensor is a declared future extension.
func (p *Pure) GammaMass() (float64, error) {
	mass := p.ovr.Gamma.Mass
	if mass == nil {
		mass = p.rec.Gamma.Mass
	}
	if mass == nil {
		return 0, fmt.Errorf("%w: gamma.mass of %q", ErrMissingParameter, p.name)
	}

	return mass[0], nil
}

// LatticeConstant returns the lattice constant [Å] at temperature temp,
// linearly expanded around the 300 K tabulated value:
//
//	a(T) = a300 + da/dT · (T − 300)
func (p *Pure) LatticeConstant(temp float64) (float64, error) {
	lat, err := p.resolve("lattice", p.ovr.Lattice, p.rec.Lattice)
	if err != nil {
		return 0, err
	}
	coeff, err := p.resolve("lattice_temp", p.ovr.LatticeTempCoeff, p.rec.LatticeTempCoeff)
	if err != nil {
		return 0, err
	}

	return lat + coeff*(temp-referenceTemperature), nil
}

// valleyKey returns the schema key prefix of a valley, used in
// ErrMissingParameter contexts.
func valleyKey(v Valley) string {
	switch v {
	case Gamma:
		return "gamma"
	case L:
		return "l"
	case X:
		return "x"
	default:
		return fmt.Sprintf("valley(%d)", int(v))
	}
}
