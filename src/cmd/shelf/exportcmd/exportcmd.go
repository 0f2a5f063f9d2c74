package exportcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bookshelf/src/internal/schema"
	"bookshelf/src/internal/session"
	"bookshelf/src/internal/store"
)

// New returns an export command that writes the catalog as JSON or BibTeX.
func New(s *session.Session) *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON or BibTeX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := writerFor(format)
			if err != nil {
				return err
			}
			books := s.Open().All()
			if out == "" || out == "-" {
				return write(cmd.OutOrStdout(), books)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := write(f, books); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file path (default stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or bibtex")
	return cmd
}

func writerFor(format string) (func(io.Writer, []*schema.Book) error, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return store.WriteJSON, nil
	case "bibtex", "bib":
		return store.WriteBibTeX, nil
	default:
		return nil, fmt.Errorf("unknown format %q (use json or bibtex)", format)
	}
}
