package addcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bookshelf/src/internal/prompt"
	"bookshelf/src/internal/sanitize"
	"bookshelf/src/internal/schema"
	"bookshelf/src/internal/session"
)

const msgAdded = "added %s\n"

// New returns the add command. With no --title it prompts for every field.
func New(s *session.Session) *cobra.Command {
	var title, author, isbn string
	var year int
	c := &cobra.Command{
		Use:   "add",
		Short: "Add a book (flags or manual entry)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var b *schema.Book
			if strings.TrimSpace(title) == "" {
				var err error
				b, err = manualAdd(cmd, s.NewID())
				if err != nil {
					return err
				}
			} else {
				if !cmd.Flags().Changed("year") {
					return fmt.Errorf("--year is required with --title")
				}
				b = schema.NewBook(s.NewID(), title, author, isbn, year)
				sanitize.CleanBook(b)
			}
			c := s.Open()
			c.Add(b)
			if err := s.Save(c); err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: catalog was not saved")
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), msgAdded, b.ID())
			return err
		},
	}
	c.Flags().StringVar(&title, "title", "", "Book title")
	c.Flags().StringVar(&author, "author", "", "Author")
	c.Flags().StringVar(&isbn, "isbn", "", "ISBN (optional)")
	c.Flags().IntVar(&year, "year", 0, "Publication year")
	return c
}

func manualAdd(cmd *cobra.Command, id string) (*schema.Book, error) {
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	b, err := p.Book(id)
	if err != nil {
		return nil, fmt.Errorf("add cancelled: %w", err)
	}
	return b, nil
}
