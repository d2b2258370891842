package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/girderloads/internal/diagram"
	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Total the user loads by load case with LRFD factors",
	Long: `Sum the applied force and moment of every user load, over all the
spans and girders each load covers, by load case. The totals are
factored with the LRFD load combinations and the governing strength
combination is reported.`,
	Run: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) {
	withSession(false, func(s *project.Session) error {
		sum := s.Summary()

		heading("USER LOAD SUMMARY - AASHTO LRFD")

		section("LOADS:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, k := range load.Kinds {
			fmt.Fprintf(w, "  %s:\t%d\n", load.Name(k)+"s", sum.Counts[k])
		}
		w.Flush()
		fmt.Println()

		section("UNFACTORED TOTALS:")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Case\tForce\tMoment\n")
		fmt.Fprintf(w, "  ────\t─────\t──────\n")
		fmt.Fprintf(w, "  DC\t%.3f\t%.3f\n", sum.Force.DC, sum.Moment.DC)
		fmt.Fprintf(w, "  DW\t%.3f\t%.3f\n", sum.Force.DW, sum.Moment.DW)
		fmt.Fprintf(w, "  LL+IM\t%.3f\t%.3f\n", sum.Force.LLIM, sum.Moment.LLIM)
		w.Flush()
		fmt.Println()

		section("FACTORED TOTALS:")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Combination\tFactors (DC / DW / LL+IM)\tForce\tMoment\n")
		fmt.Fprintf(w, "  ───────────\t─────────────────────────\t─────\t──────\n")
		for _, f := range sum.Factored {
			c := f.Combination
			fmt.Fprintf(w, "  %s\t%.2f / %.2f / %.2f\t%.3f\t%.3f\n", c.ID, c.DC, c.DW, c.LLIM, f.Force, f.Moment)
		}
		w.Flush()
		fmt.Println()

		fmt.Print(diagram.DrawSummaryBox("GOVERNING STRENGTH COMBINATION", []string{
			fmt.Sprintf("%s: %s", sum.GoverningCombo.ID, sum.GoverningCombo.Description),
			fmt.Sprintf("Factored force = %.3f", sum.GoverningForce),
		}))
		fmt.Println()
		return nil
	})
}
