// Package session binds the resolved configuration to catalog load/save for
// a single CLI invocation.
package session

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"bookshelf/src/internal/catalog"
	"bookshelf/src/internal/config"
	"bookshelf/src/internal/schema"
)

// Session carries what a command needs to open and persist the catalog.
type Session struct {
	Path   string
	Logger *slog.Logger
	NewID  schema.IDFunc
}

// New builds a session from cfg. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		Path:   cfg.SnapshotPath,
		Logger: logger,
		NewID:  schema.IDWithPrefix(cfg.IDPrefix),
	}
}

// Open loads the catalog; it never fails (see catalog.Load).
func (s *Session) Open() *catalog.Catalog {
	return catalog.Load(s.Path, s.Logger)
}

// Save persists c and logs the outcome.
func (s *Session) Save(c *catalog.Catalog) error {
	if err := c.Save(s.Path); err != nil {
		s.Logger.Error("save failed", "path", s.Path, "err", err)
		return fmt.Errorf("catalog was not saved to %s: %w", s.Path, err)
	}
	s.Logger.Debug("catalog saved", "path", s.Path, "books", c.Len())
	return nil
}

// NewLogger returns a slog.Logger writing human-readable lines to w at the
// named level ("debug", "info", "warn", "error").
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "shelf",
	})
	return slog.New(handler)
}
