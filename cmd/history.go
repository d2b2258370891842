package cmd

import (
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the undo and redo history",
	Run:   runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	withSession(false, func(s *project.Session) error {
		undo, redo := s.History.History()
		fmt.Println()
		if len(undo) == 0 && len(redo) == 0 {
			fmt.Println("  No history.")
			fmt.Println()
			return nil
		}

		section("UNDO (most recent last):")
		for i, t := range undo {
			fmt.Printf("  %3d  %s\n", i+1, t.Name())
		}
		fmt.Println()

		if len(redo) > 0 {
			section("REDO (next first):")
			for i := len(redo) - 1; i >= 0; i-- {
				fmt.Printf("  %3d  %s\n", len(redo)-i, redo[i].Name())
			}
			fmt.Println()
		}
		return nil
	})
}
