package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bookshelf/src/internal/config"
	"bookshelf/src/internal/session"
)

// newRootCmd wires the root command and its subcommands around sess, which
// is filled in from flags and config before any subcommand runs.
func newRootCmd(sess *session.Session) *cobra.Command {
	var cfgPath, snapshot string
	var verbose bool
	root := &cobra.Command{
		Use:           "shelf",
		Short:         "Personal book catalog (single-file YAML snapshot)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load(".env")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("file") {
				cfg.SnapshotPath = snapshot
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			*sess = *session.New(cfg, session.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "config file (YAML, optional)")
	root.PersistentFlags().StringVarP(&snapshot, "file", "f", "", "snapshot file (overrides config and $"+config.EnvSnapshot+")")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newListCmd(sess),
		newAddCmd(sess),
		newSearchCmd(sess),
		newEditCmd(sess),
		newRemoveCmd(sess),
		newExportCmd(sess),
		newShellCmd(sess),
	)
	return root
}

func execute(args []string) error {
	root := newRootCmd(&session.Session{})
	root.SetArgs(args)
	return root.Execute()
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
