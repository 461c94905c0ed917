package bands

import "gonum.org/v1/gonum/floats"

// CompositionSweep returns n evenly spaced composition fractions spanning
// [0, 1] inclusive. n must be at least 2 (both endpoints).
func CompositionSweep(n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrSweepPoints
	}

	xs := make([]float64, n)
	floats.Span(xs, 0, 1)

	return xs, nil
}

// ValenceBandCurve evaluates the alloy heavy-hole valence band over the
// composition grid xs, preserving order. The first resolution error
// aborts the sweep.
func (al *Alloy) ValenceBandCurve(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		vb, err := al.HeavyHoleValenceBand(x)
		if err != nil {
			return nil, err
		}
		out[i] = vb
	}

	return out, nil
}

// ConductionBandCurve evaluates the position of valley v over the
// composition grid xs at temperature temp.
func (al *Alloy) ConductionBandCurve(v Valley, xs []float64, temp float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		cb, err := al.ConductionBand(v, x, temp)
		if err != nil {
			return nil, err
		}
		out[i] = cb
	}

	return out, nil
}
