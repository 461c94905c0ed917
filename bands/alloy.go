package bands

import "github.com/heterolab/bandstruct/matdb"

// Alloy resolves band-structure quantities for a binary alloy as a
// function of the composition fraction x of its first component.
//
// It exclusively owns two Pure resolvers, one per component, each built
// with its own component-level Overrides; alloy-level AlloyOverrides
// adjust bowing, shift the interpolated positions, or assign composite
// quantities outright.
type Alloy struct {
	name string
	rec  matdb.AlloyRecord
	a, b *Pure
	ovr  AlloyOverrides
}

// NewAlloy builds a resolver for the named alloy in db. ovr adjusts the
// composite level; aOvr and bOvr adjust the first and second component
// respectively (any of the three may be nil). Unknown names fail with
// matdb.ErrUnknownAlloy or matdb.ErrUnknownMaterial.
func NewAlloy(db *matdb.DB, name string, ovr *AlloyOverrides, aOvr, bOvr *Overrides) (*Alloy, error) {
	rec, err := db.Alloy(name)
	if err != nil {
		return nil, err
	}
	a, err := NewPure(db, rec.Components[0], aOvr)
	if err != nil {
		return nil, err
	}
	b, err := NewPure(db, rec.Components[1], bOvr)
	if err != nil {
		return nil, err
	}

	al := &Alloy{name: name, rec: rec, a: a, b: b}
	if ovr != nil {
		al.ovr = *ovr
	}

	return al, nil
}

// Name returns the alloy name this resolver was built for.
func (al *Alloy) Name() string { return al.name }

// Components returns the two component resolvers (A first, B second).
func (al *Alloy) Components() (*Pure, *Pure) { return al.a, al.b }

// Interpolate applies the universal alloy-mixing law
//
//	P(x) = x·pa + (1−x)·pb − x·(1−x)·bow
//
// linear interpolation between the two component values with a quadratic
// bowing correction. bow = 0 reduces to pure linear mixing.
func Interpolate(x, pa, pb, bow float64) float64 {
	return x*pa + (1-x)*pb - x*(1-x)*bow
}

// HeavyHoleValenceBand returns the alloy heavy-hole valence-band edge
// [eV] at composition x. A direct ValenceBand override is returned
// unchanged; otherwise the component edges are interpolated with the
// valence-band bowing and the alloy-level shift is added.
func (al *Alloy) HeavyHoleValenceBand(x float64) (float64, error) {
	if al.ovr.ValenceBand != nil {
		return *al.ovr.ValenceBand, nil
	}

	va, err := al.a.HeavyHoleValenceBand()
	if err != nil {
		return 0, err
	}
	vb, err := al.b.HeavyHoleValenceBand()
	if err != nil {
		return 0, err
	}

	mean := Interpolate(x, va, vb, al.ovr.valenceBowing(al.rec))

	return mean + al.ovr.shift(), nil
}

// LightHoleValenceBand returns the light-hole valence-band edge [eV] at
// composition x; degenerate with the heavy hole, as for Pure.
func (al *Alloy) LightHoleValenceBand(x float64) (float64, error) {
	return al.HeavyHoleValenceBand(x)
}

// BandGap returns the alloy band gap [eV] for valley v at composition x
// and temperature temp. A direct Gap override for the valley is returned
// unchanged; otherwise the component gaps are interpolated with the
// valley-specific bowing. No shift applies to gaps.
func (al *Alloy) BandGap(v Valley, x, temp float64) (float64, error) {
	if gap := al.ovr.gap(v); gap != nil {
		return *gap, nil
	}

	ga, err := al.a.BandGap(v, temp)
	if err != nil {
		return 0, err
	}
	gb, err := al.b.BandGap(v, temp)
	if err != nil {
		return 0, err
	}

	return Interpolate(x, ga, gb, al.ovr.bowing(v, al.rec)), nil
}

// ConductionBand returns the position [eV] of valley v at composition x
// and temperature temp. A direct Gap override anchors the valley at the
// alloy valence band plus that gap; otherwise the component conduction
// bands are interpolated with the valley-specific bowing and the
// alloy-level shift is added.
func (al *Alloy) ConductionBand(v Valley, x, temp float64) (float64, error) {
	if gap := al.ovr.gap(v); gap != nil {
		vb, err := al.HeavyHoleValenceBand(x)
		if err != nil {
			return 0, err
		}

		return vb + *gap, nil
	}

	ca, err := al.a.ConductionBand(v, temp)
	if err != nil {
		return 0, err
	}
	cb, err := al.b.ConductionBand(v, temp)
	if err != nil {
		return 0, err
	}

	mean := Interpolate(x, ca, cb, al.ovr.bowing(v, al.rec))

	return mean + al.ovr.shift(), nil
}
