package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/alexiusacademia/girderloads/internal/status"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show problems found in the loads and the timeline",
	Run:   runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	withSession(false, func(s *project.Session) error {
		items := s.Status.Items()
		fmt.Println()
		if len(items) == 0 {
			fmt.Printf("  %s No problems found in %d load(s)\n\n", styles.OK.Render("✓"), s.Ledger.Len())
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  \tSeverity\tLoad\tMessage\n")
		fmt.Fprintf(w, "  \t────────\t────\t───────\n")
		for _, it := range items {
			id := "-"
			if it.LoadID != 0 {
				id = fmt.Sprintf("#%d", it.LoadID)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", severityIcon(it.Severity), severityText(it.Severity), id, it.Message)
		}
		w.Flush()
		fmt.Println()

		if s.Status.MaxSeverity() == status.Error {
			fmt.Println(styles.Muted.Render("  Loads on missing events can be removed with 'girderloads load fix'."))
			fmt.Println()
		}
		return nil
	})
}

func maxSeverity(items []status.Item) status.Severity {
	sev := status.Information
	for _, it := range items {
		if it.Severity > sev {
			sev = it.Severity
		}
	}
	return sev
}
