package cmd

import (
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/spf13/cobra"
)

var loadAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a point, distributed or moment load",
}

var loadAddPointCmd = &cobra.Command{
	Use:   "point",
	Short: "Add a point load",
	Long: `Add a concentrated force to a span and girder.

Examples:
  girderloads load add point --span 2 --girder B -m 45 -l 0.5 --case DW
  girderloads load add point --span 1 --girder all -m 12 -l 1.2 --fractional=false --start-cantilever
  girderloads load add point -m 80 --case LL+IM -d "Crane outrigger"`,
	Run: func(cmd *cobra.Command, args []string) {
		runLoadAdd(cmd, load.PointLoad{})
	},
}

var loadAddDistributedCmd = &cobra.Command{
	Use:   "distributed",
	Short: "Add a distributed load",
	Long: `Add a uniform or trapezoidal line load to a span and girder.

Examples:
  girderloads load add distributed --span all --girder all --uniform --w-start 1.2 --case DW -d "Utilities"
  girderloads load add distributed --span 2 --girder C --start 0.2 --end 0.6 --w-start 3 --w-end 5`,
	Run: func(cmd *cobra.Command, args []string) {
		runLoadAdd(cmd, load.DistributedLoad{})
	},
}

var loadAddMomentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Add a concentrated moment at a span end",
	Long: `Add a concentrated moment at the start (location 0) or end
(location 1) of a span.

Examples:
  girderloads load add moment --span 3 --girder A -m -120 -l 1`,
	Run: func(cmd *cobra.Command, args []string) {
		runLoadAdd(cmd, load.MomentLoad{})
	},
}

func init() {
	loadCmd.AddCommand(loadAddCmd)
	loadAddCmd.AddCommand(loadAddPointCmd, loadAddDistributedCmd, loadAddMomentCmd)

	addCommonLoadFlags(loadAddPointCmd.Flags())
	addPointFlags(loadAddPointCmd.Flags())

	addCommonLoadFlags(loadAddDistributedCmd.Flags())
	addDistributedFlags(loadAddDistributedCmd.Flags())

	addCommonLoadFlags(loadAddMomentCmd.Flags())
	addMomentFlags(loadAddMomentCmd.Flags())
}

func runLoadAdd(cmd *cobra.Command, blank load.Record) {
	withSession(true, func(s *project.Session) error {
		r, err := applyLoadFlags(cmd.Flags(), blank, true)
		if err != nil {
			return err
		}

		pending := pendingEvent(cmd.Flags())
		switch {
		case pending != nil:
			r = load.WithEvent(r, timeline.CreateEventID)
		case !cmd.Flags().Changed("event"):
			choices := s.EventChoices(r.Base().Case)
			if len(choices) == 0 {
				return fmt.Errorf("no timeline event accepts %s loads", r.Base().Case)
			}
			r = load.WithEvent(r, choices[0].ID)
		}

		out, err := s.InsertLoad(r, pending, flagValues{cmd.Flags()}.on("adjust"))
		if err != nil {
			return fmt.Errorf("%s", explain(err))
		}
		reportOutcome(s, "Inserted", out)
		return nil
	})
}
