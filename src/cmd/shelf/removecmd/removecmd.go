package removecmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bookshelf/src/internal/session"
)

// New returns the remove command that deletes one book by id.
func New(s *session.Session) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a book by id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("--id is required")
			}
			c := s.Open()
			if !c.RemoveByID(id) {
				return fmt.Errorf("no book found for id %s", id)
			}
			if err := s.Save(c); err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: catalog was not saved")
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", id)
			return err
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "internal id of the book to remove")
	return cmd
}
