package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/girderloads/internal/diagram"
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the bridge and its construction timeline",
	Run:   runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) {
	withSession(false, func(s *project.Session) error {
		heading(fmt.Sprintf("%s (%s project)", s.Name, s.Mode))

		title := "BRIDGE"
		if s.Bridge.Name != "" {
			title = "BRIDGE: " + s.Bridge.Name
		}
		fmt.Print(diagram.DrawSummaryBox(title, diagram.SpanTable(s.Bridge)))
		fmt.Println()

		printTimeline(s.Document)

		if err := s.Timeline.Validate(); err != nil {
			warn("%v", err)
			fmt.Println()
		}
		return nil
	})
}

func printTimeline(d *project.Document) {
	section("TIMELINE:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tDay\tDuration\tDescription\tActivities\tLoads\n")
	fmt.Fprintf(w, "  ──\t───\t────────\t───────────\t──────────\t─────\n")
	for _, ev := range d.Timeline.Events() {
		fmt.Fprintf(w, "  %d\t%.1f\t%.1f\t%s\t%s\t%d\n",
			ev.ID, ev.Day, ev.Duration, ev.Description, ev.Activities, len(d.Ledger.LoadsAtEvent(ev.ID)))
	}
	w.Flush()
	fmt.Println()
}
