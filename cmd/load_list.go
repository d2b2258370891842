package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/spf13/cobra"
)

var (
	loadListSort  string
	loadListDesc  bool
	loadListKind  string
	loadListEvent int64
)

var loadListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List loads",
	Long: `List the user defined loads of the project.

Sort columns: type, event, case, span, girder, location, magnitude,
description. Loads with equal sort keys are listed in ID order.

Examples:
  girderloads load list
  girderloads load list --sort magnitude --desc
  girderloads load list --kind distributed --event 3`,
	Run: runLoadList,
}

func init() {
	loadCmd.AddCommand(loadListCmd)

	loadListCmd.Flags().StringVar(&loadListSort, "sort", "type", "Sort column")
	loadListCmd.Flags().BoolVar(&loadListDesc, "desc", false, "Sort in descending order")
	loadListCmd.Flags().StringVar(&loadListKind, "kind", "", "Only list loads of this kind (point, distributed, moment)")
	loadListCmd.Flags().Int64Var(&loadListEvent, "event", -1, "Only list loads on this event")
}

func runLoadList(cmd *cobra.Command, args []string) {
	col, err := load.ParseSortColumn(loadListSort)
	if err != nil {
		fail("%v", err)
		return
	}

	withSession(false, func(s *project.Session) error {
		var records []load.Record
		for _, r := range s.Ledger.All() {
			if loadListKind != "" && r.Kind().String() != loadListKind {
				continue
			}
			if cmd.Flags().Changed("event") && int64(r.Base().EventID) != loadListEvent {
				continue
			}
			records = append(records, r)
		}
		load.Sort(records, col, !loadListDesc, s.Timeline.IndexOf)

		if len(records) == 0 {
			fmt.Println()
			fmt.Println("  No loads.")
			fmt.Println()
			return nil
		}

		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID\tType\tEvent\tCase\tSpan\tGirder\tLocation\tMagnitude\tDescription\t\n")
		fmt.Fprintf(w, "  ──\t────\t─────\t────\t────\t──────\t────────\t─────────\t───────────\t\n")
		for _, r := range records {
			c := r.Base()
			mark := ""
			if items := s.Status.ItemsForLoad(c.ID); len(items) > 0 {
				mark = severityIcon(maxSeverity(items))
			}
			fmt.Fprintf(w, "  %d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				c.ID, r.Kind(), c.EventID, c.Case,
				bridge.SpanLabel(c.Key.Span), bridge.GirderLabel(c.Key.Girder),
				formatLocation(r), formatMagnitude(r), c.Description, mark)
		}
		w.Flush()
		fmt.Println()
		fmt.Printf("  %d load(s)\n\n", len(records))
		return nil
	})
}

func formatLocation(r load.Record) string {
	loc := func(v float64, fractional bool) string {
		if fractional {
			return fmt.Sprintf("%.3fL", v)
		}
		return fmt.Sprintf("%.3f", v)
	}
	switch v := r.(type) {
	case load.PointLoad:
		s := loc(v.Location, v.Fractional)
		switch {
		case v.StartCantilever:
			s += " (start cantilever)"
		case v.EndCantilever:
			s += " (end cantilever)"
		}
		return s
	case load.DistributedLoad:
		if v.Type == load.Uniform {
			return "full span"
		}
		return loc(v.StartLocation, v.Fractional) + " - " + loc(v.EndLocation, v.Fractional)
	case load.MomentLoad:
		if v.Location == 0 {
			return "start"
		}
		return "end"
	}
	return ""
}

func formatMagnitude(r load.Record) string {
	if d, ok := r.(load.DistributedLoad); ok && !d.IsUniform() {
		return fmt.Sprintf("%.3f - %.3f", d.WStart, d.WEnd)
	}
	return fmt.Sprintf("%.3f", load.Magnitude(r))
}
