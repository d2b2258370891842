package cmd

import (
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/spf13/cobra"
)

var eventAssignCmd = &cobra.Command{
	Use:   "assign <activity> <event-id>",
	Short: "Move a single occurrence activity onto an event",
	Long: `Move cast-deck, railing, overlay or live-load onto an event. The
activity is removed from whichever event held it before.

Examples:
  girderloads event assign live-load 8`,
	Args: cobra.ExactArgs(2),
	Run:  runEventAssign,
}

func init() {
	eventCmd.AddCommand(eventAssignCmd)
}

func runEventAssign(cmd *cobra.Command, args []string) {
	act, err := timeline.ParseActivity(args[0])
	if err != nil {
		fail("%v", err)
		return
	}
	id, err := parseEventID(args[1])
	if err != nil {
		fail("%v", err)
		return
	}
	withSession(true, func(s *project.Session) error {
		if err := s.AssignActivity(act, id); err != nil {
			return err
		}
		success("Assigned %s to %s", act, s.Timeline.Label(id))
		if err := s.Timeline.Validate(); err != nil {
			warn("%v", err)
		}
		if n := s.Status.Count(); n > 0 {
			fmt.Printf("  %d status item(s), see 'girderloads status'\n", n)
		}
		return nil
	})
}
