package main

import (
	"github.com/spf13/cobra"

	"bookshelf/src/cmd/shelf/addcmd"
	"bookshelf/src/cmd/shelf/editcmd"
	"bookshelf/src/cmd/shelf/exportcmd"
	"bookshelf/src/cmd/shelf/listcmd"
	"bookshelf/src/cmd/shelf/removecmd"
	"bookshelf/src/cmd/shelf/searchcmd"
	"bookshelf/src/cmd/shelf/shellcmd"
	"bookshelf/src/internal/session"
)

func newListCmd(s *session.Session) *cobra.Command   { return listcmd.New(s) }
func newAddCmd(s *session.Session) *cobra.Command    { return addcmd.New(s) }
func newSearchCmd(s *session.Session) *cobra.Command { return searchcmd.New(s) }
func newEditCmd(s *session.Session) *cobra.Command   { return editcmd.New(s) }
func newRemoveCmd(s *session.Session) *cobra.Command { return removecmd.New(s) }
func newExportCmd(s *session.Session) *cobra.Command { return exportcmd.New(s) }
func newShellCmd(s *session.Session) *cobra.Command  { return shellcmd.New(s) }
