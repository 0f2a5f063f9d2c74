package listcmd

import (
	"github.com/spf13/cobra"

	"bookshelf/src/internal/render"
	"bookshelf/src/internal/session"
)

// New returns the list command that prints every book in catalog order.
func New(s *session.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := s.Open()
			render.Books(cmd.OutOrStdout(), c.All())
			return nil
		},
	}
}
