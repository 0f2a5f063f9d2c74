package schema

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultIDPrefix is prepended to generated ids unless configured otherwise.
const DefaultIDPrefix = "ID-"

// IDFunc produces a fresh internal id for a new book.
type IDFunc func() string

// NewID returns a random uuid string.
func NewID() string { return uuid.NewString() }

// IDWithPrefix returns an IDFunc yielding prefix+uuid ids.
func IDWithPrefix(prefix string) IDFunc {
	return func() string { return prefix + NewID() }
}

// Book is a single catalog entry. The internal id is fixed at construction;
// the descriptive fields may be edited in place.
type Book struct {
	id     string
	Title  string
	Author string
	ISBN   string // optional, not validated
	Year   int
}

// NewBook constructs a Book with the given internal id.
func NewBook(id, title, author, isbn string, year int) *Book {
	return &Book{id: id, Title: title, Author: author, ISBN: isbn, Year: year}
}

// ID returns the book's internal id.
func (b *Book) ID() string { return b.id }

// String renders the book as a single display line.
func (b *Book) String() string {
	return fmt.Sprintf("Book [ID: %s, Title: %s, Author: %s, ISBN: %s, Year: %d]",
		b.id, b.Title, b.Author, ISBNOrPlaceholder(b.ISBN), b.Year)
}

// ISBNOrPlaceholder returns isbn, or "not provided" when it is blank.
func ISBNOrPlaceholder(isbn string) string {
	if strings.TrimSpace(isbn) == "" {
		return "not provided"
	}
	return isbn
}
