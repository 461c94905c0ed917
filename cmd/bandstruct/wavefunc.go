package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heterolab/bandstruct/nextnano"
)

var wavefuncCmd = &cobra.Command{
	Use:   "wavefunc <result-folder>",
	Short: "Summarize a nextnano wavefunction output",
	Long: `Loads the single-band Schrödinger wavefunctions from a nextnano
result folder and prints the grid extent and subband count.`,
	Args: cobra.ExactArgs(1),
	RunE: runWavefunc,
}

func init() {
	rootCmd.AddCommand(wavefuncCmd)
}

func runWavefunc(cmd *cobra.Command, args []string) error {
	wf, err := nextnano.LoadWavefunctions(args[0])
	if err != nil {
		return err
	}
	logger.Debugw("loaded wavefunctions",
		"folder", args[0], "points", len(wf.Position), "subbands", wf.NumSubbands())

	if len(wf.Position) == 0 {
		fmt.Println("empty grid")
		return nil
	}
	fmt.Printf("grid: %d points, %.3f .. %.3f nm\n",
		len(wf.Position), wf.Position[0], wf.Position[len(wf.Position)-1])
	fmt.Printf("subbands: %d\n", wf.NumSubbands())

	return nil
}
