package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/girderloads/internal/store"
)

// Session is a document opened from a file, with its undo history kept in
// the history store between invocations.
type Session struct {
	*Document

	path   string
	key    string
	store  *store.Store
	logger *slog.Logger
}

// Path returns the project file path.
func (s *Session) Path() string { return s.path }

// OpenSession loads the project at path and, when the store holds a history
// written for exactly this file content, restores its undo and redo stacks.
// A stale history is discarded.
func OpenSession(ctx context.Context, path string, st *store.Store) (*Session, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	doc, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s := &Session{
		Document: doc,
		path:     abs,
		key:      abs,
		store:    st,
		logger:   slog.Default().With("component", "session"),
	}
	if st == nil {
		return s, nil
	}

	h, err := st.LoadHistory(ctx, s.key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return s, nil
	case err != nil:
		return nil, err
	}
	if h.Checksum != Checksum(data) {
		s.logger.Warn("project changed outside girderloads, discarding history", "project", abs)
		return s, st.DeleteHistory(ctx, s.key)
	}
	if err := doc.RestoreJournal(h.Undo, h.Redo); err != nil {
		s.logger.Warn("history unreadable, discarding", "project", abs, "error", err)
		doc.History.Clear()
		return s, st.DeleteHistory(ctx, s.key)
	}
	return s, nil
}

// CreateSession writes a new project file and starts an empty history.
func CreateSession(ctx context.Context, path string, doc *Document, st *store.Store) (*Session, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	s := &Session{
		Document: doc,
		path:     abs,
		key:      abs,
		store:    st,
		logger:   slog.Default().With("component", "session"),
	}
	return s, s.Save(ctx)
}

// Save writes the project file and the history that belongs to it.
func (s *Session) Save(ctx context.Context) error {
	data, err := s.Document.Save(s.path)
	if err != nil {
		return err
	}
	if s.store == nil {
		return nil
	}
	undo, redo, err := s.Journal()
	if err != nil {
		return err
	}
	return s.store.SaveHistory(ctx, s.key, store.History{
		Checksum: Checksum(data),
		Undo:     undo,
		Redo:     redo,
	})
}
