package sanitize

import (
	"strings"

	"bookshelf/src/internal/schema"
)

const (
	maxText = 512
	maxISBN = 64
)

// CleanString trims and removes ASCII control characters except tab/newline/carriage
// return, keeping at most max runes (if max <= 0, no truncation).
func CleanString(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || (r >= 0x20 && r != 0x7f) {
			b.WriteRune(r)
			n++
			if max > 0 && n >= max {
				break
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// CleanBook applies conservative sanitization to the book's text fields.
// The id is left alone.
func CleanBook(b *schema.Book) {
	if b == nil { return }
	b.Title = CleanString(b.Title, maxText)
	b.Author = CleanString(b.Author, maxText)
	b.ISBN = CleanString(b.ISBN, maxISBN)
}
