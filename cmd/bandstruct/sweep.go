package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heterolab/bandstruct/bands"
)

var (
	sweepPoints int
	sweepValley string

	sweepCmd = &cobra.Command{
		Use:   "sweep <alloy>",
		Short: "Sweep an alloy over composition",
		Long: `Tabulates the valence-band edge and one conduction valley of a
binary alloy over an evenly spaced composition grid x in [0, 1].`,
		Args: cobra.ExactArgs(1),
		RunE: runSweep,
	}
)

func init() {
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 11, "number of composition grid points")
	sweepCmd.Flags().StringVar(&sweepValley, "valley", "gamma", "conduction valley to tabulate (gamma, l, x)")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	valley, err := parseValley(sweepValley)
	if err != nil {
		return err
	}
	temp := viper.GetFloat64("temperature")

	al, err := bands.NewAlloy(db, args[0], nil, nil, nil)
	if err != nil {
		return err
	}
	xs, err := bands.CompositionSweep(sweepPoints)
	if err != nil {
		return err
	}
	logger.Debugw("sweeping alloy",
		"alloy", al.Name(), "valley", valley, "points", sweepPoints, "temperature", temp)

	vb, err := al.ValenceBandCurve(xs)
	if err != nil {
		return err
	}
	cb, err := al.ConductionBandCurve(valley, xs, temp)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "x\tVBH [eV]\tCB(%s) [eV]\n", valley)
	for i, x := range xs {
		fmt.Fprintf(w, "%.3f\t%.4f\t%.4f\n", x, vb[i], cb[i])
	}

	return w.Flush()
}
