package searchcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookshelf/src/internal/render"
	"bookshelf/src/internal/schema"
	"bookshelf/src/internal/session"
)

// New returns the search command: exactly one of --id, --title or --author.
// Title and author match case-insensitive substrings; an empty value lists
// every book.
func New(s *session.Session) *cobra.Command {
	var id, title, author string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search books by id, title or author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := selectedField(cmd)
			if err != nil {
				return err
			}
			c := s.Open()
			var out []*schema.Book
			switch field {
			case "id":
				b, ok := c.FindByID(id)
				if !ok {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "no book found for id %s\n", id)
					return err
				}
				out = []*schema.Book{b}
			case "title":
				out = c.FindByTitle(title)
			case "author":
				out = c.FindByAuthor(author)
			}
			if len(out) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no books match")
				return err
			}
			render.Books(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "exact internal id")
	cmd.Flags().StringVar(&title, "title", "", "title substring (case-insensitive)")
	cmd.Flags().StringVar(&author, "author", "", "author substring (case-insensitive)")
	return cmd
}

func selectedField(cmd *cobra.Command) (string, error) {
	var field string
	for _, f := range []string{"id", "title", "author"} {
		if !cmd.Flags().Changed(f) {
			continue
		}
		if field != "" {
			return "", fmt.Errorf("use only one of --id, --title, --author")
		}
		field = f
	}
	if field == "" {
		return "", fmt.Errorf("provide one of --id, --title, --author")
	}
	return field, nil
}
