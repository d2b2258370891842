package cmd

import (
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/spf13/cobra"
)

var repeatCmd = &cobra.Command{
	Use:   "repeat",
	Short: "Apply the last change again",
	Long: `Run the most recent change again. Only load edits can be
repeated; inserts, deletes and timeline changes cannot.`,
	Run: func(cmd *cobra.Command, args []string) {
		withSession(true, func(s *project.Session) error {
			name, _ := s.History.UndoName()
			if err := s.Repeat(); err != nil {
				return err
			}
			success("Repeated %s", name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(repeatCmd)
}
