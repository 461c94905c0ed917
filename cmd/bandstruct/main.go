// Command bandstruct prints band-structure parameters for pure and alloy
// semiconductors from the bandstruct material database: band tables,
// composition sweeps, database listings and nextnano wavefunction
// summaries.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bandstruct:", err)
		os.Exit(1)
	}
}
