// Package prompt reads line-oriented answers from an interactive user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookshelf/src/internal/sanitize"
	"bookshelf/src/internal/schema"
)

// ErrInvalidYear is returned when a publication year is not an integer.
var ErrInvalidYear = errors.New("invalid year")

// Prompter writes questions to out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over in/out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Printf writes to the prompter's output.
func (p *Prompter) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Writer returns the prompter's output.
func (p *Prompter) Writer() io.Writer { return p.out }

// Line prints q and returns the next input line without its terminator.
// io.EOF is returned only when no input at all remains.
func (p *Prompter) Line(q string) (string, error) {
	p.Printf("%s", q)
	s, err := p.in.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	return strings.TrimRight(s, "\r\n"), err
}

// Year parses a year answer.
func Year(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, strings.TrimSpace(s))
	}
	return y, nil
}

// Book asks for every field of a new book and builds it with id.
func (p *Prompter) Book(id string) (*schema.Book, error) {
	title, err := p.Line("Title: ")
	if err != nil {
		return nil, err
	}
	author, err := p.Line("Author: ")
	if err != nil {
		return nil, err
	}
	isbn, err := p.Line("ISBN (optional, leave blank if unknown): ")
	if err != nil {
		return nil, err
	}
	ys, err := p.Line("Publication year: ")
	if err != nil {
		return nil, err
	}
	year, err := Year(ys)
	if err != nil {
		return nil, err
	}
	b := schema.NewBook(id, title, author, isbn, year)
	sanitize.CleanBook(b)
	return b, nil
}

// Edit asks for a new value of each mutable field; a blank answer keeps the
// current value. An unparsable year is reported and left unchanged.
func (p *Prompter) Edit(b *schema.Book) error {
	defer sanitize.CleanBook(b)
	p.Printf("Leave a field blank to keep its current value.\n")
	if s, err := p.Line(fmt.Sprintf("New title [%s]: ", b.Title)); err != nil {
		return err
	} else if strings.TrimSpace(s) != "" {
		b.Title = s
	}
	if s, err := p.Line(fmt.Sprintf("New author [%s]: ", b.Author)); err != nil {
		return err
	} else if strings.TrimSpace(s) != "" {
		b.Author = s
	}
	if s, err := p.Line(fmt.Sprintf("New ISBN [%s]: ", b.ISBN)); err != nil {
		return err
	} else if strings.TrimSpace(s) != "" {
		b.ISBN = s
	}
	s, err := p.Line(fmt.Sprintf("New publication year [%d]: ", b.Year))
	if err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	y, err := Year(s)
	if err != nil {
		p.Printf("Invalid year format; the year was not changed.\n")
		return nil
	}
	b.Year = y
	return nil
}
