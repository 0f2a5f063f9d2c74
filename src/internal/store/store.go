package store

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"bookshelf/src/internal/schema"
)

const (
	// DefaultSnapshotPath is the snapshot location relative to the working directory.
	DefaultSnapshotPath = "catalog.yaml"
	// SnapshotVersion is the only snapshot layout this build reads or writes.
	SnapshotVersion = 1
)

// Record is the on-disk form of a schema.Book.
type Record struct {
	ID     string `yaml:"id" json:"id"`
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author" json:"author"`
	ISBN   string `yaml:"isbn" json:"isbn"`
	Year   int    `yaml:"year" json:"year"`
}

type snapshot struct {
	Version int      `yaml:"version"`
	Books   []Record `yaml:"books"`
}

// ToRecords converts books to records, preserving order.
func ToRecords(books []*schema.Book) []Record {
	out := make([]Record, 0, len(books))
	for _, b := range books {
		if b == nil {
			continue
		}
		out = append(out, Record{ID: b.ID(), Title: b.Title, Author: b.Author, ISBN: b.ISBN, Year: b.Year})
	}
	return out
}

// FromRecords rebuilds books from records, preserving order.
func FromRecords(recs []Record) []*schema.Book {
	out := make([]*schema.Book, 0, len(recs))
	for _, r := range recs {
		out = append(out, schema.NewBook(r.ID, r.Title, r.Author, r.ISBN, r.Year))
	}
	return out
}

// ReadSnapshot loads every book from the snapshot at path.
// A missing file yields an error matching fs.ErrNotExist.
func ReadSnapshot(path string) ([]*schema.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isCompressed(path) {
		if data, err = decompress(data); err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}
	var s snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d in %s", s.Version, path)
	}
	return FromRecords(s.Books), nil
}

// WriteSnapshot replaces the snapshot at path with books. The data is written
// to a temporary sibling first and renamed into place.
func WriteSnapshot(path string, books []*schema.Book) error {
	buf, err := yaml.Marshal(snapshotNode(ToRecords(books)))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if isCompressed(path) {
		buf = compress(buf)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// snapshotNode builds the document by hand so every string is double quoted
// and survives a read back exactly. Strings that are not valid UTF-8 are
// stored as !!binary.
func snapshotNode(recs []Record) *yaml.Node {
	books := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range recs {
		book := &yaml.Node{Kind: yaml.MappingNode}
		addField(book, "id", strNode(r.ID))
		addField(book, "title", strNode(r.Title))
		addField(book, "author", strNode(r.Author))
		addField(book, "isbn", strNode(r.ISBN))
		addField(book, "year", intNode(r.Year))
		books.Content = append(books.Content, book)
	}
	doc := &yaml.Node{Kind: yaml.MappingNode}
	addField(doc, "version", intNode(SnapshotVersion))
	addField(doc, "books", books)
	return doc
}

func addField(m *yaml.Node, key string, val *yaml.Node) {
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, val)
}

func strNode(s string) *yaml.Node {
	if !utf8.ValidString(s) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!binary", Value: base64.StdEncoding.EncodeToString([]byte(s))}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: s}
}

func intNode(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}

func isCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zst")
}
