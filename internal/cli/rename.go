package cli

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/batchrename/internal/config"
	"github.com/backmassage/batchrename/internal/display"
	"github.com/backmassage/batchrename/internal/pipeline"
)

func newReplaceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace <search> [replace]",
		Short: "Replace text in the selected names",
		Long: `Replace every occurrence of <search> in each selected name with [replace]
(empty when omitted). Items whose name does not change are reported as
unchanged; names the namespace refuses are skipped.`,
		Example: `  batchrename replace draft final --select '*.txt'
  batchrename replace _old --host scene --scene shot.yaml -n`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := pipeline.ReplaceOp{Search: args[0]}
			if len(args) == 2 {
				op.Replace = args[1]
			}
			a.run(cmd, op)
			return nil
		},
	}
}

func newNumberCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number <base>",
		Short: "Rename the selection to <base>_<index>",
		Long: `Rename the selected items, in selection order, to <base>_<index> where the
index starts at --start and is zero-filled to --padding digits.`,
		Example: `  batchrename number Shot --start 10 --padding 4
  batchrename number prop --host db --db scene.db --select Cube,Sphere`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.run(cmd, pipeline.NumberOp{BaseName: args[0], Start: a.cfg.Start, Padding: a.cfg.Padding})
			return nil
		},
	}
	config.RegisterNumberingFlags(cmd.Flags())
	return cmd
}

// run executes op and records the exit code.
func (a *app) run(cmd *cobra.Command, op pipeline.Operation) {
	printBanner(cmd.OutOrStdout())
	stats := pipeline.Run(cmd.Context(), a.cfg, a.log, op)
	if a.cfg.ShowTable {
		display.RenderOutcomes(cmd.OutOrStdout(), stats.Outcomes)
	}
	a.exitCode = stats.ExitCode()
}
