package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/alexiusacademia/girderloads/internal/store"
)

// openStore opens the history store selected by --history. A nil store
// means history is disabled.
func openStore() (*store.Store, error) {
	if strings.EqualFold(historyDir, "off") {
		return nil, nil
	}
	dir := historyDir
	if dir == "" {
		var err error
		if dir, err = store.DefaultPath(); err != nil {
			return nil, err
		}
	}
	cfg := store.DefaultConfig(dir)
	cfg.Logger = slog.Default().With("component", "badger")
	return store.Open(cfg)
}

// withSession opens the project, runs fn and, when save is set and fn
// succeeded, writes the project and its history back.
func withSession(save bool, fn func(s *project.Session) error) {
	ctx := context.Background()

	st, err := openStore()
	if err != nil {
		fail("Error opening history: %v", err)
		return
	}
	if st != nil {
		defer st.Close()
	}

	s, err := project.OpenSession(ctx, projectPath, st)
	if err != nil {
		fail("Error loading project: %v", err)
		return
	}
	if err := fn(s); err != nil {
		fail("%v", err)
		return
	}
	if !save {
		return
	}
	if err := s.Save(ctx); err != nil {
		fail("Error saving project: %v", err)
	}
}
