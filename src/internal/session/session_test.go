package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookshelf/src/internal/config"
	"bookshelf/src/internal/schema"
)

func TestOpenSaveRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.SnapshotPath = filepath.Join(t.TempDir(), "catalog.yaml")
	cfg.IDPrefix = "BK-"
	s := New(cfg, nil)

	c := s.Open()
	if !c.IsEmpty() {
		t.Fatalf("expected empty catalog on first run")
	}
	id := s.NewID()
	if !strings.HasPrefix(id, "BK-") {
		t.Fatalf("unexpected id %q", id)
	}
	c.Add(schema.NewBook(id, "Dune", "Frank Herbert", "", 1965))
	if err := s.Save(c); err != nil {
		t.Fatalf("save: %v", err)
	}
	again := s.Open()
	if b, ok := again.FindByID(id); !ok || b.Title != "Dune" {
		t.Fatalf("book not persisted: %v %v", b, ok)
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.SnapshotPath = filepath.Join(blocker, "catalog.yaml")
	var logs bytes.Buffer
	s := New(cfg, NewLogger(&logs, "info"))

	c := s.Open()
	c.Add(schema.NewBook("x", "T", "A", "", 1))
	err := s.Save(c)
	if err == nil {
		t.Fatalf("expected save error")
	}
	if !strings.Contains(err.Error(), "catalog was not saved") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(logs.String(), "save failed") {
		t.Fatalf("expected save failure to be logged, got %q", logs.String())
	}
	if c.Len() != 1 {
		t.Fatalf("in-memory catalog changed after failed save")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output: %q", out)
	}

	buf.Reset()
	NewLogger(&buf, "bogus").Debug("quiet")
	if buf.Len() != 0 {
		t.Fatalf("unknown level should fall back to info, got %q", buf.String())
	}
}
