package cmd

import (
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/spf13/cobra"
)

var eventRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a timeline event",
	Long: `Remove an event. Events that carry user loads, or the only
occurrence of a required activity, cannot be removed.`,
	Args: cobra.ExactArgs(1),
	Run:  runEventRemove,
}

func init() {
	eventCmd.AddCommand(eventRemoveCmd)
}

func runEventRemove(cmd *cobra.Command, args []string) {
	id, err := parseEventID(args[0])
	if err != nil {
		fail("%v", err)
		return
	}
	withSession(true, func(s *project.Session) error {
		label := s.Timeline.Label(id)
		if err := s.RemoveEvent(id); err != nil {
			return err
		}
		success("Removed %s", label)
		return nil
	})
}
