package bands_test

import (
	"strings"
	"testing"

	"github.com/heterolab/bandstruct/bands"
	"github.com/heterolab/bandstruct/matdb"
	"github.com/heterolab/bandstruct/semimath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustPure builds a resolver against the builtin database or fails the test.
func mustPure(t *testing.T, name string, ovr *bands.Overrides) *bands.Pure {
	t.Helper()
	p, err := bands.NewPure(matdb.Builtin(), name, ovr)
	require.NoError(t, err)

	return p
}

// TestNewPure_UnknownMaterial verifies the lookup failure is surfaced at
// construction, before any computation.
func TestNewPure_UnknownMaterial(t *testing.T) {
	_, err := bands.NewPure(matdb.Builtin(), "Unobtainium", nil)
	assert.ErrorIs(t, err, matdb.ErrUnknownMaterial)
}

// TestPure_GaAsReferenceValues pins the concrete GaAs scenario:
// VBH = 1.46, VBSO = 1.46 − 0.341 = 1.119, Eg(Γ, 0 K) = 1.519.
func TestPure_GaAsReferenceValues(t *testing.T) {
	p := mustPure(t, "GaAs", nil)

	vbh, err := p.HeavyHoleValenceBand()
	require.NoError(t, err)
	assert.Equal(t, 1.46, vbh)

	vbso, err := p.SpinOrbitValenceBand()
	require.NoError(t, err)
	assert.InDelta(t, 1.119, vbso, 1e-12)

	gap, err := p.BandGap(bands.Gamma, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.519, gap)
}

// TestPure_ZeroTemperatureGaps verifies Eg(v, 0) = Eg0(v) for every
// valley of every seed material (Varshni reduces to the T = 0 gap).
func TestPure_ZeroTemperatureGaps(t *testing.T) {
	db := matdb.Builtin()
	for _, name := range db.PureNames() {
		p := mustPure(t, name, nil)
		rec, err := db.Pure(name)
		require.NoError(t, err)

		for _, v := range matdb.Valleys {
			gap, err := p.BandGap(v, 0)
			require.NoError(t, err, "%s %s", name, v)
			assert.Equal(t, *rec.Valley(v).Gap0, gap, "%s %s", name, v)
		}
	}
}

// TestPure_SpinOrbitIdentity checks VBSO = VBH − Δso for every seed
// material with no overrides.
func TestPure_SpinOrbitIdentity(t *testing.T) {
	db := matdb.Builtin()
	for _, name := range db.PureNames() {
		p := mustPure(t, name, nil)
		rec, err := db.Pure(name)
		require.NoError(t, err)

		vbh, err := p.HeavyHoleValenceBand()
		require.NoError(t, err)
		vbso, err := p.SpinOrbitValenceBand()
		require.NoError(t, err)
		assert.InDelta(t, vbh-*rec.SpinOrbit, vbso, 1e-12, name)
	}
}

// TestPure_LightHoleDegenerate verifies the light-hole edge equals the
// heavy-hole edge bit for bit (known simplification of this model).
func TestPure_LightHoleDegenerate(t *testing.T) {
	p := mustPure(t, "AlAs", &bands.Overrides{EnergyShift: bands.Float(0.25)})

	vbh, err := p.HeavyHoleValenceBand()
	require.NoError(t, err)
	vbl, err := p.LightHoleValenceBand()
	require.NoError(t, err)
	assert.Equal(t, vbh, vbl)
}

// TestPure_ConductionBand verifies CB(v, T) = VBH + Eg(v, T) and that the
// temperature is forwarded to the gap.
func TestPure_ConductionBand(t *testing.T) {
	p := mustPure(t, "GaAs", nil)

	for _, temp := range []float64{0, 77, bands.DefaultTemperature} {
		for _, v := range matdb.Valleys {
			vbh, err := p.HeavyHoleValenceBand()
			require.NoError(t, err)
			gap, err := p.BandGap(v, temp)
			require.NoError(t, err)
			cb, err := p.ConductionBand(v, temp)
			require.NoError(t, err)
			assert.Equal(t, vbh+gap, cb, "valley %s at T=%v", v, temp)
		}
	}
}

// TestPure_OverridePrecedence_SingleKey overrides just the Varshni α of
// the Γ valley and verifies only that key's contribution changes: the
// result must equal a manual Varshni evaluation with the overridden α
// and the default Eg0/β.
func TestPure_OverridePrecedence_SingleKey(t *testing.T) {
	alpha := 1.1e-3
	p := mustPure(t, "GaAs", &bands.Overrides{
		Gamma: bands.ValleyOverrides{Alpha: bands.Float(alpha)},
	})

	gap, err := p.BandGap(bands.Gamma, 300)
	require.NoError(t, err)
	assert.Equal(t, semimath.Varshni(300, 1.519, alpha, 204.0), gap)

	// The other valleys must be untouched by the Γ override.
	lGap, err := p.BandGap(bands.L, 300)
	require.NoError(t, err)
	assert.Equal(t, semimath.Varshni(300, 1.815, 0.605e-3, 204.0), lGap)
}

// TestPure_EnergyShiftAsymmetry verifies the shift moves band positions
// but never gaps: VBH, VBSO and CB move by the shift; BandGap does not.
func TestPure_EnergyShiftAsymmetry(t *testing.T) {
	base := mustPure(t, "GaAs", nil)
	shifted := mustPure(t, "GaAs", &bands.Overrides{EnergyShift: bands.Float(-0.5)})

	baseVBH, err := base.HeavyHoleValenceBand()
	require.NoError(t, err)
	shiftVBH, err := shifted.HeavyHoleValenceBand()
	require.NoError(t, err)
	assert.InDelta(t, baseVBH-0.5, shiftVBH, 1e-12)

	baseGap, err := base.BandGap(bands.X, 300)
	require.NoError(t, err)
	shiftGap, err := shifted.BandGap(bands.X, 300)
	require.NoError(t, err)
	assert.Equal(t, baseGap, shiftGap, "gaps must not be shifted")

	shiftCB, err := shifted.ConductionBand(bands.X, 300)
	require.NoError(t, err)
	assert.InDelta(t, shiftVBH+baseGap, shiftCB, 1e-12,
		"shift must enter the conduction band exactly once")
}

// TestPure_ValenceBandOverride verifies a full valence-band override
// while the spin-orbit term falls through to the database.
func TestPure_ValenceBandOverride(t *testing.T) {
	p := mustPure(t, "GaAs", &bands.Overrides{ValenceBand: bands.Float(0.0)})

	vbh, err := p.HeavyHoleValenceBand()
	require.NoError(t, err)
	assert.Equal(t, 0.0, vbh)

	vbso, err := p.SpinOrbitValenceBand()
	require.NoError(t, err)
	assert.InDelta(t, -0.341, vbso, 1e-12)
}

// TestPure_GammaMass verifies the principal-axis Γ mass and its override.
func TestPure_GammaMass(t *testing.T) {
	p := mustPure(t, "GaAs", nil)
	m, err := p.GammaMass()
	require.NoError(t, err)
	assert.Equal(t, 0.067, m)

	p = mustPure(t, "GaAs", &bands.Overrides{
		Gamma: bands.ValleyOverrides{Mass: bands.Mass(0.063, 0.063, 0.063)},
	})
	m, err = p.GammaMass()
	require.NoError(t, err)
	assert.Equal(t, 0.063, m)
}

// TestPure_LatticeConstant verifies the tabulated value at 300 K and the
// linear expansion away from it.
func TestPure_LatticeConstant(t *testing.T) {
	p := mustPure(t, "GaAs", nil)

	a300, err := p.LatticeConstant(300)
	require.NoError(t, err)
	assert.Equal(t, 5.65325, a300)

	a400, err := p.LatticeConstant(400)
	require.NoError(t, err)
	assert.InDelta(t, 5.65325+100*3.88e-5, a400, 1e-12)
}

// TestPure_MissingParameter uses a sparse custom record: queries that
// need absent keys fail with ErrMissingParameter, and an override alone
// can satisfy them.
func TestPure_MissingParameter(t *testing.T) {
	const src = `
pure:
  Mystery:
    valence_band: 0.8
    gamma: {gap0: 1.0, alpha: 0.4e-3}
`
	db, err := matdb.Load(strings.NewReader(src))
	require.NoError(t, err)

	p, err := bands.NewPure(db, "Mystery", nil)
	require.NoError(t, err)

	// Spin-orbit splitting is absent everywhere.
	_, err = p.SpinOrbitValenceBand()
	assert.ErrorIs(t, err, bands.ErrMissingParameter)
	assert.ErrorContains(t, err, "spin_orbit")

	// Varshni β is absent for Γ.
	_, err = p.BandGap(bands.Gamma, 300)
	assert.ErrorIs(t, err, bands.ErrMissingParameter)

	// The L valley is entirely absent.
	_, err = p.BandGap(bands.L, 300)
	assert.ErrorIs(t, err, bands.ErrMissingParameter)

	// Mass is absent.
	_, err = p.GammaMass()
	assert.ErrorIs(t, err, bands.ErrMissingParameter)

	// An override supplies the missing β; the query now succeeds.
	p, err = bands.NewPure(db, "Mystery", &bands.Overrides{
		Gamma: bands.ValleyOverrides{Beta: bands.Float(200.0)},
	})
	require.NoError(t, err)
	gap, err := p.BandGap(bands.Gamma, 300)
	require.NoError(t, err)
	assert.Equal(t, semimath.Varshni(300, 1.0, 0.4e-3, 200.0), gap)
}

// TestPure_Idempotence verifies repeated queries with identical inputs
// return bit-identical results.
func TestPure_Idempotence(t *testing.T) {
	p := mustPure(t, "AlAs", &bands.Overrides{EnergyShift: bands.Float(0.015)})

	first, err := p.ConductionBand(bands.Gamma, 180.5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := p.ConductionBand(bands.Gamma, 180.5)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
