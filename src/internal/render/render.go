package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"bookshelf/src/internal/schema"
)

// EmptyMessage is printed instead of a table when there is nothing to show.
const EmptyMessage = "catalog is empty"

// Books renders books as a fixed-width table in the given order.
func Books(w io.Writer, books []*schema.Book) {
	if len(books) == 0 {
		_, _ = fmt.Fprintln(w, EmptyMessage)
		return
	}
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{b.ID(), b.Title, b.Author, schema.ISBNOrPlaceholder(b.ISBN), strconv.Itoa(b.Year)})
	}
	Table(w, []string{"id", "title", "author", "isbn", "year"}, rows)
}

// Table writes headers, a dashed separator and rows with padded columns.
func Table(w io.Writer, headers []string, rows [][]string) {
	widths := computeColWidths(headers, rows)
	writeColumns(w, headers, widths)
	writeSeparator(w, widths)
	for _, r := range rows {
		writeColumns(w, r, widths)
	}
}

func computeColWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i := range headers {
			if i < len(r) {
				if l := runewidth.StringWidth(r[i]); l > widths[i] {
					widths[i] = l
				}
			}
		}
	}
	return widths
}

func writeSeparator(w io.Writer, widths []int) {
	cols := make([]string, len(widths))
	for i, width := range widths {
		cols[i] = strings.Repeat("-", width)
	}
	writeColumns(w, cols, widths)
}

func writeColumns(w io.Writer, cols []string, widths []int) {
	var b strings.Builder
	for i, width := range widths {
		val := ""
		if i < len(cols) {
			val = cols[i]
		}
		b.WriteString(val)
		if i != len(widths)-1 {
			b.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(val)+2))
		}
	}
	b.WriteString("\n")
	_, _ = io.WriteString(w, b.String())
}
