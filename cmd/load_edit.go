package cmd

import (
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/spf13/cobra"
)

var loadEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a load",
	Long: `Change the fields of an existing load. Only the flags given are
changed; everything else keeps its current value.

Examples:
  girderloads load edit 4 -m 60
  girderloads load edit 7 --event 3 --case DW
  girderloads load edit 2 --new-event "Install utilities" --new-event-day 100 --adjust`,
	Args: cobra.ExactArgs(1),
	Run:  runLoadEdit,
}

func init() {
	loadCmd.AddCommand(loadEditCmd)

	f := loadEditCmd.Flags()
	addCommonLoadFlags(f)
	addPointFlags(f)
	addDistributedFlags(f)
	addMomentFlags(f)
}

func runLoadEdit(cmd *cobra.Command, args []string) {
	ids, err := parseLoadIDs(args)
	if err != nil {
		fail("%v", err)
		return
	}
	id := ids[0]

	withSession(true, func(s *project.Session) error {
		current, ok := s.Ledger.FindByID(id)
		if !ok {
			return fmt.Errorf("load #%d: %w", id, load.ErrLoadNotFound)
		}
		r, err := applyLoadFlags(cmd.Flags(), current, false)
		if err != nil {
			return err
		}
		pending := pendingEvent(cmd.Flags())
		if pending != nil {
			r = load.WithEvent(r, timeline.CreateEventID)
		}

		out, err := s.EditLoad(id, r, pending, flagValues{cmd.Flags()}.on("adjust"))
		if err != nil {
			return fmt.Errorf("%s", explain(err))
		}
		reportOutcome(s, "Edited", out)
		return nil
	})
}
