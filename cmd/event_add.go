package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/spf13/cobra"
)

var (
	eventAddDay        float64
	eventAddDuration   float64
	eventAddActivities []string
	eventAddAdjust     bool
)

var eventAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a timeline event",
	Long: `Add an event to the timeline. An event that overlaps its
neighbours is rejected unless --adjust is given, in which case later
events are pushed back.

Examples:
  girderloads event add "Install utilities" --day 100
  girderloads event add "Cast deck" --day 95 --activity cast-deck --adjust`,
	Args: cobra.MinimumNArgs(1),
	Run:  runEventAdd,
}

func init() {
	eventCmd.AddCommand(eventAddCmd)

	eventAddCmd.Flags().Float64Var(&eventAddDay, "day", 0, "Start day")
	eventAddCmd.Flags().Float64Var(&eventAddDuration, "duration", 1, "Duration in days")
	eventAddCmd.Flags().StringSliceVar(&eventAddActivities, "activity", nil, "Single occurrence activity to move onto the new event (repeatable)")
	eventAddCmd.Flags().BoolVar(&eventAddAdjust, "adjust", false, "Push later events back when the new event overlaps them")
}

func runEventAdd(cmd *cobra.Command, args []string) {
	ev := timeline.Event{
		ID:          timeline.InvalidEventID,
		Description: strings.Join(args, " "),
		Day:         eventAddDay,
		Duration:    eventAddDuration,
	}
	for _, name := range eventAddActivities {
		act, err := timeline.ParseActivity(name)
		if err != nil {
			fail("%v", err)
			return
		}
		ev.Activities = ev.Activities.With(act)
	}

	withSession(true, func(s *project.Session) error {
		id, err := s.AddEvent(ev, eventAddAdjust)
		if err != nil {
			return fmt.Errorf("%s", explain(err))
		}
		success("Added %s", s.Timeline.Label(id))
		if err := s.Timeline.Validate(); err != nil {
			warn("%v", err)
		}
		return nil
	})
}
