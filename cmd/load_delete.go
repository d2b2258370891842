package cmd

import (
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/spf13/cobra"
)

var loadDeleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"rm"},
	Short:   "Delete one or more loads",
	Long: `Delete loads by ID. Several loads are deleted as one step, so a
single undo brings them all back.

Examples:
  girderloads load delete 3
  girderloads load delete 4 5 9`,
	Args: cobra.MinimumNArgs(1),
	Run:  runLoadDelete,
}

func init() {
	loadCmd.AddCommand(loadDeleteCmd)
}

func runLoadDelete(cmd *cobra.Command, args []string) {
	ids, err := parseLoadIDs(args)
	if err != nil {
		fail("%v", err)
		return
	}
	withSession(true, func(s *project.Session) error {
		if err := s.DeleteLoads(ids...); err != nil {
			return err
		}
		success("Deleted %d load(s)", len(ids))
		return nil
	})
}
