package catalog_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/src/internal/catalog"
	"bookshelf/src/internal/schema"
	"bookshelf/src/internal/store"
)

func seeded() *catalog.Catalog {
	c := catalog.New()
	c.Add(schema.NewBook("A1", "L'Étranger", "Albert Camus", "978-2070360024", 1942))
	c.Add(schema.NewBook("A2", "1984", "George Orwell", "978-2070368228", 1949))
	c.Add(schema.NewBook("A3", "Le Seigneur des Anneaux", "J.R.R. Tolkien", "", 1954))
	return c
}

func ids(books []*schema.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID())
	}
	return out
}

func TestAdd(t *testing.T) {
	t.Parallel()

	c := catalog.New()
	assert.True(t, c.IsEmpty())

	c.Add(nil)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())

	c.Add(schema.NewBook("x", "T", "A", "", 1))
	c.Add(schema.NewBook("y", "T", "A", "", 2))
	assert.False(t, c.IsEmpty())
	assert.Equal(t, []string{"x", "y"}, ids(c.All()))
}

func TestFindByID(t *testing.T) {
	t.Parallel()

	c := seeded()
	b, ok := c.FindByID("A2")
	require.True(t, ok)
	assert.Equal(t, "1984", b.Title)

	b, ok = c.FindByID("missing")
	assert.False(t, ok)
	assert.Nil(t, b)

	_, ok = c.FindByID("a2")
	assert.False(t, ok, "id match is exact")
}

func TestFindByID_DuplicateReturnsFirst(t *testing.T) {
	t.Parallel()

	c := catalog.New()
	c.Add(schema.NewBook("dup", "First", "A", "", 1))
	c.Add(schema.NewBook("dup", "Second", "A", "", 2))

	b, ok := c.FindByID("dup")
	require.True(t, ok)
	assert.Equal(t, "First", b.Title)

	require.True(t, c.RemoveByID("dup"))
	b, ok = c.FindByID("dup")
	require.True(t, ok)
	assert.Equal(t, "Second", b.Title)
}

func TestFindByTitle(t *testing.T) {
	t.Parallel()

	c := seeded()
	assert.Equal(t, []string{"A2"}, ids(c.FindByTitle("19")))
	assert.Equal(t, []string{"A1", "A3"}, ids(c.FindByTitle("E")))
	assert.Equal(t, []string{"A3"}, ids(c.FindByTitle("le")))
	assert.Equal(t, []string{"A3"}, ids(c.FindByTitle("SEIGNEUR")))

	none := c.FindByTitle("2020")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFindByAuthor(t *testing.T) {
	t.Parallel()

	c := seeded()
	assert.Equal(t, []string{"A2"}, ids(c.FindByAuthor("orWELL")))
	assert.Equal(t, []string{"A1"}, ids(c.FindByAuthor("al")))
	assert.Equal(t, []string{"A1", "A2", "A3"}, ids(c.FindByAuthor("R")))
	assert.Empty(t, c.FindByAuthor("nobody"))
}

func TestEmptyQueryMatchesAll(t *testing.T) {
	t.Parallel()

	c := seeded()
	assert.Equal(t, []string{"A1", "A2", "A3"}, ids(c.FindByTitle("")))
	assert.Equal(t, []string{"A1", "A2", "A3"}, ids(c.FindByAuthor("")))
	assert.Empty(t, catalog.New().FindByTitle(""))
}

func TestRemoveByID(t *testing.T) {
	t.Parallel()

	c := seeded()
	assert.False(t, c.RemoveByID("nope"))
	assert.Equal(t, []string{"A1", "A2", "A3"}, ids(c.All()))

	assert.True(t, c.RemoveByID("A2"))
	assert.Equal(t, []string{"A1", "A3"}, ids(c.All()))
	assert.Equal(t, 2, c.Len())

	assert.False(t, c.RemoveByID("A2"))
	assert.True(t, c.RemoveByID("A1"))
	assert.True(t, c.RemoveByID("A3"))
	assert.True(t, c.IsEmpty())
}

func TestEditInPlace(t *testing.T) {
	t.Parallel()

	c := seeded()
	b, ok := c.FindByID("A3")
	require.True(t, ok)
	b.Title = "The Lord of the Rings"
	b.ISBN = "978-0544003415"

	again, _ := c.FindByID("A3")
	assert.Equal(t, "The Lord of the Rings", again.Title)
	assert.Equal(t, []string{"A3"}, ids(c.FindByTitle("lord")))

	hits := c.FindByAuthor("camus")
	require.Len(t, hits, 1)
	hits[0].Year = 1943
	b, _ = c.FindByID("A1")
	assert.Equal(t, 1943, b.Year)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	c := seeded()
	ok := c.Update("A2", func(b *schema.Book) { b.Author = "Eric Blair" })
	require.True(t, ok)
	b, _ := c.FindByID("A2")
	assert.Equal(t, "Eric Blair", b.Author)

	called := false
	assert.False(t, c.Update("nope", func(*schema.Book) { called = true }))
	assert.False(t, called)
}

func TestDuneScenario(t *testing.T) {
	t.Parallel()

	c := catalog.New()
	c.Add(schema.NewBook("A1", "Dune", "Herbert", "", 1965))
	assert.Equal(t, []string{"A1"}, ids(c.FindByAuthor("her")))
	assert.True(t, c.RemoveByID("A1"))
	assert.True(t, c.IsEmpty())
}

func TestLoad_MissingSnapshot(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	c := catalog.Load(filepath.Join(t.TempDir(), store.DefaultSnapshotPath), logger)
	require.NotNil(t, c)
	assert.True(t, c.IsEmpty())
	assert.Contains(t, logs.String(), "no snapshot found")
}

func TestLoad_CorruptSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [oops"), 0o644))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	c := catalog.Load(path, logger)
	require.NotNil(t, c)
	assert.True(t, c.IsEmpty())
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "fresh catalog")
}

func TestLoad_NilLogger(t *testing.T) {
	t.Parallel()

	c := catalog.Load(filepath.Join(t.TempDir(), "none.yaml"), nil)
	assert.True(t, c.IsEmpty())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	c := seeded()
	b, _ := c.FindByID("A1")
	b.ISBN = ""
	require.NoError(t, c.Save(path))

	loaded := catalog.Load(path, nil)
	require.Equal(t, c.Len(), loaded.Len())
	for i, want := range c.All() {
		got := loaded.All()[i]
		assert.Equal(t, want.ID(), got.ID())
		assert.Equal(t, want.Title, got.Title)
		assert.Equal(t, want.Author, got.Author)
		assert.Equal(t, want.ISBN, got.ISBN)
		assert.Equal(t, want.Year, got.Year)
	}
}

func TestSaveLoadRoundTrip_AwkwardStrings(t *testing.T) {
	titles := []string{
		"  spaced\nsecond",
		" x\ny",
		"\n",
		"",
		"   ",
		"trailing\n\n",
		"tab\tand\rreturn",
		"nul\x00bell\x07del\x7f",
		"key: value # not a comment",
		"- dash",
		"'single' \"double\" \\back",
		"true",
		"~",
		"0x1F",
		"\ufeffbom and \u2028separator",
		"bad \xff\xfe utf8",
		"\xc3",
	}
	for _, title := range titles {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		c := catalog.New()
		c.Add(schema.NewBook("A1", title, title, title, -3))
		c.Add(schema.NewBook("A2", "Dune", "Frank Herbert", "", 1965))
		require.NoError(t, c.Save(path), "title %q", title)

		got := catalog.Load(path, nil)
		require.Equal(t, 2, got.Len(), "title %q", title)
		b, ok := got.FindByID("A1")
		require.True(t, ok, "title %q", title)
		assert.Equal(t, title, b.Title)
		assert.Equal(t, title, b.Author)
		assert.Equal(t, title, b.ISBN)
		assert.Equal(t, -3, b.Year)
	}
}

func TestSaveReplacesSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	c := seeded()
	require.NoError(t, c.Save(path))
	require.True(t, c.RemoveByID("A1"))
	require.NoError(t, c.Save(path))

	assert.Equal(t, []string{"A2", "A3"}, ids(catalog.Load(path, nil).All()))
}

func TestSaveFailureKeepsState(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	c := seeded()
	err := c.Save(filepath.Join(blocker, "catalog.yaml"))
	require.Error(t, err)

	assert.Equal(t, 3, c.Len())
	c.Add(schema.NewBook("A4", "After", "Failure", "", 2000))
	require.NoError(t, c.Save(filepath.Join(dir, "catalog.yaml")))
	assert.Equal(t, 4, catalog.Load(filepath.Join(dir, "catalog.yaml"), nil).Len())
}
