package nextnano

import (
	"fmt"
	"os"
	"path/filepath"
)

// wavefunctionFile is the fixed single-band Schrödinger output path
// inside a nextnano result folder.
const wavefunctionFile = "sg_1band1/cb001_qc001_sg001_deg001_neu_cmplx.dat"

// Wavefunctions holds the single-band Schrödinger solutions of one
// simulation: a shared position grid and one amplitude column per
// subband.
type Wavefunctions struct {
	// Position is the spatial grid [nm].
	Position []float64
	// Amplitudes[s] is the wavefunction of subband s on the grid.
	Amplitudes [][]float64
}

// NumSubbands returns the number of subband columns.
func (w *Wavefunctions) NumSubbands() int { return len(w.Amplitudes) }

// LoadWavefunctions reads the single-band wavefunction table from a
// nextnano result folder: the first column is the position grid, every
// further column one subband amplitude.
func LoadWavefunctions(dir string) (*Wavefunctions, error) {
	path := filepath.Join(dir, filepath.FromSlash(wavefunctionFile))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nextnano: opening wavefunction file: %w", err)
	}
	defer f.Close()

	table, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if table.NumCols() < 2 {
		return nil, fmt.Errorf("%s: %w: need position plus at least one subband",
			path, ErrEmptyTable)
	}

	return &Wavefunctions{
		Position:   table.Columns[0],
		Amplitudes: table.Columns[1:],
	}, nil
}
