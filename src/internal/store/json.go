package store

import (
	"io"

	json "github.com/goccy/go-json"

	"bookshelf/src/internal/schema"
)

// WriteJSON writes books as an indented JSON array of records.
func WriteJSON(w io.Writer, books []*schema.Book) error {
	b, err := json.MarshalIndent(ToRecords(books), "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
