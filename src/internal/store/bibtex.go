package store

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"bookshelf/src/internal/names"
	"bookshelf/src/internal/schema"
)

// WriteBibTeX writes books as @book records in catalog order.
// The internal id is kept in a non-standard _id field for traceability.
func WriteBibTeX(w io.Writer, books []*schema.Book) error {
	seen := map[string]bool{}
	for _, b := range books {
		if b == nil {
			continue
		}
		key := uniqueKey(bibKeyFor(b), seen)
		if _, err := io.WriteString(w, bookToBibTeX(b, key)); err != nil {
			return err
		}
	}
	return nil
}

// bookToBibTeX converts a book into a BibTeX record string.
func bookToBibTeX(bk *schema.Book, key string) string {
	w := func(k, v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		return fmt.Sprintf("  %s = {%s},\n", k, escapeBib(v))
	}
	year := ""
	if bk.Year != 0 {
		year = fmt.Sprintf("%d", bk.Year)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "@book{%s,\n", key)
	b.WriteString(w("author", bk.Author))
	b.WriteString(w("title", bk.Title))
	b.WriteString(w("isbn", bk.ISBN))
	b.WriteString(w("year", year))
	b.WriteString(w("_id", bk.ID()))
	out := strings.TrimRight(b.String(), "\n")
	out = strings.TrimRight(out, ",")
	return out + "\n}\n\n"
}

func escapeBib(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "{", "\\{")
	s = strings.ReplaceAll(s, "}", "\\}")
	return strings.TrimSpace(s)
}

var nonKey = regexp.MustCompile(`[^a-z0-9]+`)

// uniqueKey returns base, or base with the first free suffix a..z, aa, ab, ...
// and records the result in seen.
func uniqueKey(base string, seen map[string]bool) string {
	key := base
	for n := 0; seen[key]; n++ {
		key = base + letterSuffix(n)
	}
	seen[key] = true
	return key
}

// letterSuffix maps 0, 1, ... 25, 26, ... to "a", "b", ... "z", "aa", ...
func letterSuffix(n int) string {
	var out []byte
	for n++; n > 0; n = (n - 1) / 26 {
		out = append([]byte{byte('a' + (n-1)%26)}, out...)
	}
	return string(out)
}

// bibKeyFor derives a citation key: author family name plus year, falling
// back to the id with separators removed.
func bibKeyFor(b *schema.Book) string {
	family, _ := names.Split(b.Author)
	if k := nonKey.ReplaceAllString(strings.ToLower(family), ""); k != "" {
		if b.Year != 0 {
			k += fmt.Sprintf("%d", b.Year)
		}
		return k
	}
	k := nonKey.ReplaceAllString(strings.ToLower(b.ID()), "")
	if k == "" {
		return "book"
	}
	return k
}
