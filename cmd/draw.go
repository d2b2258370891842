package cmd

import (
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/diagram"
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/spf13/cobra"
)

var (
	drawGirder     string
	drawExportFile string
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw the loads on a girder line",
	Long: `Draw the user loads acting on one girder along the full length of
the bridge. Loads keyed to all spans or all girders are included.

Examples:
  girderloads draw --girder B
  girderloads draw --girder A -o girder-a.png`,
	Run: runDraw,
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().StringVarP(&drawGirder, "girder", "g", "A", "Girder letter")
	drawCmd.Flags().StringVarP(&drawExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runDraw(cmd *cobra.Command, args []string) {
	girder, err := bridge.ParseGirderLabel(drawGirder)
	if err != nil || girder == bridge.AllGirders {
		fail("Invalid girder %q (want a single girder letter)", drawGirder)
		return
	}

	withSession(false, func(s *project.Session) error {
		if girder >= maxGirders(s.Bridge) {
			return fmt.Errorf("the bridge has no girder %s", bridge.GirderLabel(girder))
		}
		data := diagram.BuildGirderLine(s.Bridge, s.Ledger.All(), girder)
		fmt.Print(diagram.DrawGirderLine(data))
		fmt.Println()

		if drawExportFile != "" {
			written, err := diagram.ExportGirderLine(data, drawExportFile)
			if err != nil {
				return fmt.Errorf("error exporting diagram: %w", err)
			}
			success("Diagram exported to %s", written)
		}
		return nil
	})
}

func maxGirders(b *bridge.Bridge) int {
	n := 0
	for _, s := range b.Spans {
		n = max(n, s.Girders)
	}
	return n
}
