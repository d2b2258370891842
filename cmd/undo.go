package cmd

import (
	"errors"

	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/alexiusacademia/girderloads/internal/txn"
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last change",
	Run: func(cmd *cobra.Command, args []string) {
		withSession(true, func(s *project.Session) error {
			name, _ := s.History.UndoName()
			if err := s.Undo(); err != nil {
				if errors.Is(err, txn.ErrNothingToUndo) {
					warn("Nothing to undo")
					return nil
				}
				return err
			}
			success("Undid %s", name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
