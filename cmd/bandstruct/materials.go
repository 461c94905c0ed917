package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the materials of the active database",
	Args:  cobra.NoArgs,
	RunE:  runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	fmt.Println("pure:")
	for _, name := range db.PureNames() {
		fmt.Println("  " + name)
	}
	fmt.Println("alloys:")
	for _, name := range db.AlloyNames() {
		rec, err := db.Alloy(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %s (%s/%s)\n", name, rec.Components[0], rec.Components[1])
	}

	return nil
}
