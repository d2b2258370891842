package cmd

import (
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of girderloads",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("User Defined Loads for Girder Bridges")
		fmt.Println("Load factors per AASHTO LRFD (Strength I/II, Service I/III, Fatigue I)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
