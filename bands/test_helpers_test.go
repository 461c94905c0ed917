package bands_test

import (
	"strings"
	"testing"

	"github.com/heterolab/bandstruct/matdb"
	"github.com/stretchr/testify/require"
)

// sparseAlloyDB builds a tiny database whose alloy components are missing
// Varshni parameters, to exercise error propagation through the alloy
// resolver.
func sparseAlloyDB(t *testing.T) *matdb.DB {
	t.Helper()
	const src = `
pure:
  MatA:
    valence_band: 0.5
    gamma: {gap0: 2.0}
  MatB:
    valence_band: 1.0
    gamma: {gap0: 1.5, alpha: 0.5e-3, beta: 300.0}
alloys:
  AB:
    components: [MatA, MatB]
`
	db, err := matdb.Load(strings.NewReader(src))
	require.NoError(t, err)

	return db
}
