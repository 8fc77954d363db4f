package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/batchrename/internal/config"
	"github.com/backmassage/batchrename/internal/host"
	"github.com/backmassage/batchrename/internal/logging"
	"github.com/backmassage/batchrename/internal/naming"
)

// Namespace is an opened host with its persistence hooks.
type Namespace struct {
	Host naming.Host

	save  func() error // nil when renames are already durable
	close func() error
}

// Save persists pending renames (scene files). No-op for other hosts.
func (n *Namespace) Save() error {
	if n.save == nil {
		return nil
	}
	return n.save()
}

// Close releases the host's resources.
func (n *Namespace) Close() error {
	if n.close == nil {
		return nil
	}
	return n.close()
}

// CheckPath verifies that the path backing the configured host exists and
// has the right kind.
func CheckPath(cfg *config.Config) error {
	path := cfg.NamespacePath()
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if cfg.Host == config.HostDir && !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	if cfg.Host != config.HostDir && fi.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// OpenHost builds the configured host and applies the --select override.
// In dry-run mode a directory is simulated by a dry-run Dir and the scene
// hosts are wrapped in a Preview.
func OpenHost(ctx context.Context, cfg *config.Config, log *logging.Logger) (*Namespace, error) {
	warn := host.WarnFunc(func(msg string) { log.Warn("%s", msg) })

	var ns *Namespace
	switch cfg.Host {
	case config.HostDir:
		files, err := Discover(cfg.Dir, cfg.Select)
		if err != nil {
			return nil, fmt.Errorf("discover files: %w", err)
		}
		log.Debug(cfg.Verbose, "Selected %d files in %s", len(files), cfg.Dir)
		if cfg.DryRun {
			// Simulated on a listing snapshot with the same checks as a real run.
			d, err := host.NewDirDryRun(cfg.Dir, files, cfg.KeepExtension, warn)
			if err != nil {
				return nil, fmt.Errorf("list %s: %w", cfg.Dir, err)
			}
			return &Namespace{Host: d}, nil
		}
		ns = &Namespace{Host: host.NewDir(cfg.Dir, files, cfg.KeepExtension, warn)}

	case config.HostScene:
		s, err := host.OpenScene(cfg.SceneFile, warn)
		if err != nil {
			return nil, fmt.Errorf("open scene: %w", err)
		}
		if len(cfg.Select) > 0 {
			if err := s.SelectNames(cfg.Select); err != nil {
				return nil, err
			}
		}
		ns = &Namespace{Host: s, save: func() error {
			if !s.Dirty() {
				return nil
			}
			return s.Save()
		}}

	case config.HostDB:
		st, err := host.OpenStore(ctx, cfg.DBPath, warn)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if len(cfg.Select) > 0 {
			if err := st.Select(ctx, cfg.Select); err != nil {
				return nil, errors.Join(err, st.Close())
			}
		}
		ns = &Namespace{Host: st, close: st.Close}

	default:
		return nil, fmt.Errorf("unknown host %q", cfg.Host)
	}

	if cfg.DryRun {
		ns.Host = host.NewPreview(ns.Host)
		ns.save = nil
	}
	return ns, nil
}
