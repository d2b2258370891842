package cmd

import (
	"fmt"
	"strconv"

	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage the construction timeline",
	Long: `List and edit the timeline events that loads are placed on.

Subcommands:
  list     - List events and the loads on each
  add      - Add an event
  remove   - Remove an event
  assign   - Move a single occurrence activity onto an event

Single occurrence activities: cast-deck, railing, overlay, live-load.`,
}

var eventListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List timeline events",
	Run: func(cmd *cobra.Command, args []string) {
		withSession(false, func(s *project.Session) error {
			fmt.Println()
			printTimeline(s.Document)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(eventCmd)
	eventCmd.AddCommand(eventListCmd)
}

func parseEventID(arg string) (timeline.EventID, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || n < 0 {
		return timeline.InvalidEventID, fmt.Errorf("invalid event ID %q", arg)
	}
	return timeline.EventID(n), nil
}
