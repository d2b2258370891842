package cmd

import (
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/spf13/cobra"
)

var loadFixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Delete loads whose timeline event no longer exists",
	Long: `Delete every load that refers to an event missing from the
timeline. The deletion is a single step that 'girderloads undo' reverts.`,
	Run: runLoadFix,
}

func init() {
	loadCmd.AddCommand(loadFixCmd)
}

func runLoadFix(cmd *cobra.Command, args []string) {
	withSession(true, func(s *project.Session) error {
		messages, err := s.FixBadLoads()
		if err != nil {
			return err
		}
		if len(messages) == 0 {
			success("All loads are on existing timeline events")
			return nil
		}
		fmt.Println()
		fmt.Println("The following loads were removed because their events are not in the timeline:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, m := range messages {
			fmt.Printf("  • %s\n", m)
		}
		fmt.Println()
		return nil
	})
}
