// Package cli provides the command-line interface for batchrename.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/batchrename/internal/config"
	"github.com/backmassage/batchrename/internal/display"
	"github.com/backmassage/batchrename/internal/logging"
	"github.com/backmassage/batchrename/internal/term"
)

// Version information (set at build time).
var (
	Version = "0.1.0"
	Commit  = "unknown"
)

// app holds what PersistentPreRunE resolves for the running command.
type app struct {
	cfgFile  string
	cfg      *config.Config
	log      *logging.Logger
	exitCode int
}

// NewRootCmd creates the root command and its subcommands.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "batchrename",
		Short: "batchrename - sanitized batch renaming",
		Long: `batchrename renames a selection of items in one namespace: the files of a
directory, the objects of a YAML scene file or of a SQLite scene database.

Names are sanitized to identifiers, renames never collide with existing
names, and every item reports whether it was renamed, skipped or unchanged.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help, completion and version
			switch cmd.Name() {
			case "help", "completion", "__complete", "version":
				return nil
			}

			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.NewLogger(&cfg)
			if err != nil {
				return fmt.Errorf("cannot open log file: %w", err)
			}
			log.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
			a.cfg = &cfg
			a.log = log

			if cfg.Verbose && cfg.ConfigFile != "" {
				log.Info("Using config file: %s", cfg.ConfigFile)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./batchrename.yaml)")
	config.RegisterFlags(rootCmd.PersistentFlags())

	_ = rootCmd.RegisterFlagCompletionFunc("host", fixedCompletion(string(config.HostDir), string(config.HostScene), string(config.HostDB)))
	_ = rootCmd.RegisterFlagCompletionFunc("color", fixedCompletion(string(config.ColorAuto), string(config.ColorAlways), string(config.ColorNever)))

	rootCmd.AddCommand(newVersionCommand(Version, Commit))
	rootCmd.AddCommand(newReplaceCommand(a))
	rootCmd.AddCommand(newNumberCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newSceneCommand(a))
	rootCmd.AddCommand(newCompletionCommand())

	return rootCmd
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if a.log != nil {
		if cerr := a.log.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "batchrename: %v\n", err)
		return 1
	}
	return a.exitCode
}

// printBanner prints the banner when w is a terminal.
func printBanner(w io.Writer) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(f) {
		display.PrintBanner(w)
	}
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
