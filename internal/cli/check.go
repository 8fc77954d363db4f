package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/backmassage/batchrename/internal/check"
)

func newCheckCommand(a *app) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the namespace can be renamed",
		Long: `Report the resolved host and config file, whether the directory, scene file
or database exists and is writable, and whether the namespace lock is free.
Nothing is renamed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if quiet {
				// Failures go to the log file only.
				if err := check.CheckNamespace(cmd.Context(), a.cfg); err != nil {
					a.log.Record("check failed", zap.String("host", string(a.cfg.Host)), zap.Error(err))
					a.exitCode = 1
				}
				return nil
			}
			printBanner(cmd.OutOrStdout())
			if !check.RunCheck(cmd.Context(), a.cfg, a.log) {
				a.exitCode = 1
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing; report problems through the exit status")
	return cmd
}
