// Package store keeps the undo/redo journal of each project between command
// invocations in an embedded BadgerDB.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when no history is stored for a project.
var ErrNotFound = errors.New("no history stored for project")

const historyPrefix = "history/"

// Config holds configuration for the history database.
type Config struct {
	// Path is the directory for database files. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM. Used by tests.
	InMemory bool

	// SyncWrites makes every commit durable before it returns.
	SyncWrites bool

	// Logger receives BadgerDB's internal log output. Nil disables it.
	Logger *slog.Logger
}

// DefaultConfig returns a durable configuration rooted at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// DefaultPath returns $XDG_STATE_HOME/girderloads/history, falling back to
// ~/.local/state/girderloads/history.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "girderloads", "history"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate history directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "girderloads", "history"), nil
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// History is the stored journal of one project. Entries are opaque to the
// store; Checksum identifies the project file state the journal belongs to.
type History struct {
	Checksum string            `json:"checksum"`
	Undo     []json.RawMessage `json:"undo"`
	Redo     []json.RawMessage `json:"redo"`
	SavedAt  time.Time         `json:"saved_at"`
}

// Store is a BadgerDB backed history store.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens the history database described by cfg.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent history store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create history directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	return &Store{db: db, logger: slog.Default().With("component", "store")}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func historyKey(project string) []byte {
	return []byte(historyPrefix + project)
}

// SaveHistory stores the journal of a project, replacing any previous one.
func (s *Store) SaveHistory(ctx context.Context, project string, h History) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.SavedAt.IsZero() {
		h.SavedAt = time.Now().UTC()
	}
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(historyKey(project), data)
	})
	if err != nil {
		return fmt.Errorf("save history for %s: %w", project, err)
	}
	s.logger.Debug("history saved", "project", project, "undo", len(h.Undo), "redo", len(h.Redo))
	return nil
}

// LoadHistory returns the journal of a project, or ErrNotFound.
func (s *Store) LoadHistory(ctx context.Context, project string) (History, error) {
	var h History
	if err := ctx.Err(); err != nil {
		return h, err
	}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(historyKey(project))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &h)
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return History{}, err
		}
		return History{}, fmt.Errorf("load history for %s: %w", project, err)
	}
	return h, nil
}

// DeleteHistory removes the journal of a project. Deleting a missing
// journal is not an error.
func (s *Store) DeleteHistory(ctx context.Context, project string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(historyKey(project))
	})
}

// Projects lists the projects that have a stored journal.
func (s *Store) Projects(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var projects []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(historyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			projects = append(projects, strings.TrimPrefix(string(it.Item().Key()), historyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list histories: %w", err)
	}
	return projects, nil
}
