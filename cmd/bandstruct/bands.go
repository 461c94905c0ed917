package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heterolab/bandstruct/bands"
	"github.com/heterolab/bandstruct/matdb"
)

var bandsCmd = &cobra.Command{
	Use:   "bands <material>",
	Short: "Print the band lineup of a pure semiconductor",
	Long: `Prints valence-band edges, Varshni band gaps and conduction-band
positions for every valley of one pure semiconductor at the requested
temperature.`,
	Args: cobra.ExactArgs(1),
	RunE: runBands,
}

func init() {
	rootCmd.AddCommand(bandsCmd)
}

func runBands(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	temp := viper.GetFloat64("temperature")

	p, err := bands.NewPure(db, args[0], nil)
	if err != nil {
		return err
	}
	logger.Debugw("resolving band lineup", "material", p.Name(), "temperature", temp)

	vbh, err := p.HeavyHoleValenceBand()
	if err != nil {
		return err
	}
	vbso, err := p.SpinOrbitValenceBand()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s at %g K\n", p.Name(), temp)
	fmt.Fprintf(w, "VBH/VBL\t%.4f eV\n", vbh)
	fmt.Fprintf(w, "VBSO\t%.4f eV\n", vbso)
	for _, v := range matdb.Valleys {
		gap, err := p.BandGap(v, temp)
		if err != nil {
			return err
		}
		cb, err := p.ConductionBand(v, temp)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Eg(%s)\t%.4f eV\tCB %.4f eV\n", v, gap, cb)
	}
	if mass, err := p.GammaMass(); err == nil {
		fmt.Fprintf(w, "m*(Gamma)\t%.4f m0\n", mass)
	}
	if lat, err := p.LatticeConstant(temp); err == nil {
		fmt.Fprintf(w, "a\t%.5f Angstrom\n", lat)
	}

	return w.Flush()
}
