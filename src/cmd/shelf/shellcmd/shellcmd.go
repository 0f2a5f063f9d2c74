// Package shellcmd implements the interactive menu over the catalog. The
// catalog is loaded once on entry and saved when the user quits.
package shellcmd

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bookshelf/src/internal/catalog"
	"bookshelf/src/internal/prompt"
	"bookshelf/src/internal/render"
	"bookshelf/src/internal/schema"
	"bookshelf/src/internal/session"
)

// New returns the interactive shell command.
func New(s *session.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu (list, add, search, edit, delete); saves on quit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := &shell{
				sess: s,
				cat:  s.Open(),
				p:    prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
			}
			return sh.run()
		},
	}
}

type shell struct {
	sess *session.Session
	cat  *catalog.Catalog
	p    *prompt.Prompter
}

// starterBooks seeds an empty catalog on first use.
var starterBooks = []struct {
	title, author, isbn string
	year                int
}{
	{"L'Étranger", "Albert Camus", "978-2070360024", 1942},
	{"1984", "George Orwell", "978-2070368228", 1949},
	{"The Lord of the Rings", "J.R.R. Tolkien", "978-2070612825", 1954},
}

func (sh *shell) run() error {
	if sh.cat.IsEmpty() {
		sh.p.Printf("Empty catalog, adding starter books.\n")
		for _, sb := range starterBooks {
			sh.cat.Add(schema.NewBook(sh.sess.NewID(), sb.title, sb.author, sb.isbn, sb.year))
		}
	}
	for {
		sh.menu()
		choice, err := sh.p.Line("Your choice: ")
		if err != nil {
			return sh.quitOn(err)
		}
		switch strings.TrimSpace(choice) {
		case "1":
			render.Books(sh.p.Writer(), sh.cat.All())
		case "2":
			err = sh.add()
		case "3":
			err = sh.search()
		case "4":
			err = sh.edit()
		case "5":
			err = sh.remove()
		case "0":
			return sh.quit()
		default:
			sh.p.Printf("Invalid choice, please try again.\n")
		}
		if err != nil {
			return sh.quitOn(err)
		}
		sh.p.Printf("\n")
	}
}

func (sh *shell) menu() {
	sh.p.Printf("--- Catalog menu ---\n" +
		"1: List all books\n" +
		"2: Add a book\n" +
		"3: Search\n" +
		"4: Edit a book\n" +
		"5: Delete a book\n" +
		"0: Save and quit\n")
}

// quitOn saves before leaving on any input error. End of input is a normal
// quit; other errors are returned along with any save failure.
func (sh *shell) quitOn(err error) error {
	saveErr := sh.quit()
	if errors.Is(err, io.EOF) {
		return saveErr
	}
	return errors.Join(err, saveErr)
}

func (sh *shell) quit() error {
	if err := sh.sess.Save(sh.cat); err != nil {
		sh.p.Printf("warning: catalog was not saved: %v\n", err)
		return err
	}
	sh.p.Printf("Catalog saved to %s.\n", sh.sess.Path)
	return nil
}

func (sh *shell) add() error {
	sh.p.Printf("--- Add a book ---\n")
	b, err := sh.p.Book(sh.sess.NewID())
	if errors.Is(err, prompt.ErrInvalidYear) {
		sh.p.Printf("Invalid year. Add cancelled.\n")
		return nil
	}
	if err != nil {
		return err
	}
	sh.cat.Add(b)
	sh.p.Printf("Book added with internal id %s\n", b.ID())
	return nil
}

func (sh *shell) search() error {
	sh.p.Printf("--- Search ---\n1: By internal id\n2: By title\n3: By author\n0: Back\n")
	choice, err := sh.p.Line("Your choice: ")
	if err != nil {
		return err
	}
	switch strings.TrimSpace(choice) {
	case "1":
		id, err := sh.p.Line("Internal id: ")
		if err != nil {
			return err
		}
		if b, ok := sh.cat.FindByID(id); ok {
			sh.p.Printf("Found: %s\n", b)
		} else {
			sh.p.Printf("No book has this id.\n")
		}
	case "2", "3":
		q, err := sh.p.Line("Search text: ")
		if err != nil {
			return err
		}
		var hits []*schema.Book
		if strings.TrimSpace(choice) == "2" {
			hits = sh.cat.FindByTitle(q)
		} else {
			hits = sh.cat.FindByAuthor(q)
		}
		if len(hits) == 0 {
			sh.p.Printf("No book matches.\n")
			return nil
		}
		render.Books(sh.p.Writer(), hits)
	case "0":
	default:
		sh.p.Printf("Invalid search choice.\n")
	}
	return nil
}

// selectBook lets the user pick a book by id or by title search. It returns
// nil when nothing was selected.
func (sh *shell) selectBook() (*schema.Book, error) {
	sh.p.Printf("How do you want to find the book?\n1: By internal id\n2: By title search\n0: Cancel\n")
	choice, err := sh.p.Line("Your choice: ")
	if err != nil {
		return nil, err
	}
	switch strings.TrimSpace(choice) {
	case "1":
		id, err := sh.p.Line("Internal id: ")
		if err != nil {
			return nil, err
		}
		b, _ := sh.cat.FindByID(id)
		return b, nil
	case "2":
		q, err := sh.p.Line("Title text: ")
		if err != nil {
			return nil, err
		}
		hits := sh.cat.FindByTitle(q)
		switch len(hits) {
		case 0:
			return nil, nil
		case 1:
			return hits[0], nil
		}
		sh.p.Printf("Several books match, pick one:\n")
		for i, b := range hits {
			sh.p.Printf("%d: %s\n", i+1, b)
		}
		sh.p.Printf("0: Cancel\n")
		pick, err := sh.p.Line("Your choice: ")
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(pick))
		if err != nil || n < 1 || n > len(hits) {
			return nil, nil
		}
		return hits[n-1], nil
	}
	return nil, nil
}

func (sh *shell) edit() error {
	sh.p.Printf("--- Edit a book ---\n")
	b, err := sh.selectBook()
	if err != nil {
		return err
	}
	if b == nil {
		sh.p.Printf("No book selected. Cancelled.\n")
		return nil
	}
	sh.p.Printf("Editing: %s\n", b)
	if err := sh.p.Edit(b); err != nil {
		return err
	}
	sh.p.Printf("Book updated.\n")
	return nil
}

func (sh *shell) remove() error {
	sh.p.Printf("--- Delete a book ---\n")
	b, err := sh.selectBook()
	if err != nil {
		return err
	}
	if b == nil {
		sh.p.Printf("No book selected. Cancelled.\n")
		return nil
	}
	sh.p.Printf("About to delete: %s\n", b)
	confirm, err := sh.p.Line("Confirm deletion? (yes/no): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(confirm), "yes") {
		sh.p.Printf("Deletion cancelled.\n")
		return nil
	}
	if sh.cat.RemoveByID(b.ID()) {
		sh.p.Printf("Book deleted.\n")
	}
	return nil
}
