package cmd

import (
	"errors"

	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/alexiusacademia/girderloads/internal/txn"
	"github.com/spf13/cobra"
)

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Redo the last undone change",
	Run: func(cmd *cobra.Command, args []string) {
		withSession(true, func(s *project.Session) error {
			name, _ := s.History.RedoName()
			if err := s.Redo(); err != nil {
				if errors.Is(err, txn.ErrNothingToRedo) {
					warn("Nothing to redo")
					return nil
				}
				return err
			}
			success("Redid %s", name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(redoCmd)
}
