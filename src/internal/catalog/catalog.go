// Package catalog holds the in-memory, ordered book collection and its
// whole-collection load/save.
//
// Books returned by lookups are the live instances stored in the catalog:
// editing their fields updates the catalog without a separate call. A Catalog
// is not safe for concurrent use.
package catalog

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"bookshelf/src/internal/schema"
	"bookshelf/src/internal/store"
)

// Catalog is an ordered collection of books. Insertion order is kept for
// display; identity is the book's internal id.
type Catalog struct {
	books []*schema.Book
}

// New returns an empty catalog.
func New() *Catalog { return &Catalog{} }

// Add appends b. A nil book is ignored.
func (c *Catalog) Add(b *schema.Book) {
	if b == nil {
		return
	}
	c.books = append(c.books, b)
}

// FindByID returns the first book whose id equals id.
func (c *Catalog) FindByID(id string) (*schema.Book, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return c.books[i], true
}

// FindByTitle returns every book whose title contains text, ignoring case.
// Empty text matches all books.
func (c *Catalog) FindByTitle(text string) []*schema.Book {
	return c.filter(text, func(b *schema.Book) string { return b.Title })
}

// FindByAuthor returns every book whose author contains text, ignoring case.
// Empty text matches all books.
func (c *Catalog) FindByAuthor(text string) []*schema.Book {
	return c.filter(text, func(b *schema.Book) string { return b.Author })
}

// RemoveByID removes the first book with the given id and reports whether
// one was found.
func (c *Catalog) RemoveByID(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	copy(c.books[i:], c.books[i+1:])
	c.books[len(c.books)-1] = nil
	c.books = c.books[:len(c.books)-1]
	return true
}

// Update applies fn to the book with the given id and reports whether it
// exists.
func (c *Catalog) Update(id string, fn func(*schema.Book)) bool {
	b, ok := c.FindByID(id)
	if !ok {
		return false
	}
	fn(b)
	return true
}

// IsEmpty reports whether the catalog holds no books.
func (c *Catalog) IsEmpty() bool { return len(c.books) == 0 }

// Len returns the number of books.
func (c *Catalog) Len() int { return len(c.books) }

// All returns the live ordered view of the catalog. Callers must not modify
// the returned slice.
func (c *Catalog) All() []*schema.Book { return c.books }

func (c *Catalog) indexOf(id string) int {
	for i, b := range c.books {
		if b.ID() == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) filter(text string, field func(*schema.Book) string) []*schema.Book {
	q := strings.ToLower(text)
	out := []*schema.Book{}
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(field(b)), q) {
			out = append(out, b)
		}
	}
	return out
}

// Load rebuilds a catalog from the snapshot at path. A missing snapshot gives
// an empty catalog. An unreadable or corrupt one is logged and also gives an
// empty catalog; its contents are abandoned.
func Load(path string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	books, err := store.ReadSnapshot(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("no snapshot found, starting a new catalog", "path", path)
		return New()
	case err != nil:
		logger.Warn("could not load catalog, a fresh catalog was created", "path", path, "err", err)
		return New()
	}
	logger.Debug("catalog loaded", "path", path, "books", len(books))
	return &Catalog{books: books}
}

// Save writes the whole catalog to path, replacing any previous snapshot.
// On failure the in-memory catalog is left untouched.
func (c *Catalog) Save(path string) error {
	return store.WriteSnapshot(path, c.books)
}
