package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/batchrename/internal/config"
	"github.com/backmassage/batchrename/internal/display"
	"github.com/backmassage/batchrename/internal/host"
	"github.com/backmassage/batchrename/internal/lock"
	"github.com/backmassage/batchrename/internal/pipeline"
)

func newSceneCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Manage scene files and scene databases",
	}
	cmd.AddCommand(newSceneImportCommand(a))
	cmd.AddCommand(newSceneListCommand(a))
	return cmd
}

func newSceneImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <scene.yaml>",
		Short: "Load a YAML scene into the --db database",
		Long: `Replace every object of the --db database (created when missing) with the
objects and selection of a YAML scene file.`,
		Example: `  batchrename scene import shot.yaml --db shot.db`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if a.cfg.DBPath == "" {
				return errors.New("scene import needs a database path (--db)")
			}
			doc, err := host.ReadScene(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			lk, err := lock.Acquire(ctx, a.cfg.DBPath, a.cfg.LockTimeout)
			if err != nil {
				return err
			}
			defer lk.Release()

			st, err := host.OpenStore(ctx, a.cfg.DBPath, nil)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Import(ctx, doc); err != nil {
				return err
			}
			a.log.Success("Imported %d objects (%d selected) into %s", len(doc.Objects), len(doc.Selection), a.cfg.DBPath)
			return nil
		},
	}
}

func newSceneListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the objects of the scene or database",
		Example: `  batchrename scene list --host scene --scene shot.yaml
  batchrename scene list --host db --db shot.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := pipeline.CheckPath(a.cfg); err != nil {
				return err
			}

			switch a.cfg.Host {
			case config.HostScene:
				doc, err := host.ReadScene(a.cfg.SceneFile)
				if err != nil {
					return err
				}
				display.RenderObjects(cmd.OutOrStdout(), doc.Objects, display.SelectionOrder(doc.Selection))

			case config.HostDB:
				st, err := host.OpenStore(ctx, a.cfg.DBPath, nil)
				if err != nil {
					return err
				}
				defer st.Close()
				objs, err := st.Objects(ctx)
				if err != nil {
					return err
				}
				sel, err := st.Selection(ctx)
				if err != nil {
					return err
				}
				ids := make([]string, len(sel))
				for i, it := range sel {
					ids[i] = it.ID
				}
				display.RenderObjects(cmd.OutOrStdout(), objs, display.SelectionOrder(ids))

			default:
				return fmt.Errorf("scene list needs --host scene or --host db (got %q)", a.cfg.Host)
			}
			return nil
		},
	}
}
