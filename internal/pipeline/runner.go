package pipeline

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/backmassage/batchrename/internal/config"
	"github.com/backmassage/batchrename/internal/display"
	"github.com/backmassage/batchrename/internal/lock"
	"github.com/backmassage/batchrename/internal/logging"
	"github.com/backmassage/batchrename/internal/naming"
)

// Run is the top-level entry point for one operation. It locks the
// namespace (real runs only), opens the host, applies op to the selection,
// logs every outcome, saves the scene when needed and returns the tally.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, op Operation) RunStats {
	var stats RunStats

	if err := CheckPath(cfg); err != nil {
		log.Error("Namespace unavailable: %v", err)
		stats.Failed++
		return stats
	}

	// A dry run reads only, and must not leave a lock file behind.
	if !cfg.DryRun {
		lk, err := lock.Acquire(ctx, cfg.NamespacePath(), cfg.LockTimeout)
		if err != nil {
			if errors.Is(err, lock.ErrLockTimeout) {
				log.Error("Another batchrename run holds %s", cfg.NamespacePath())
			} else {
				log.Error("Cannot lock namespace: %v", err)
			}
			stats.Failed++
			return stats
		}
		defer func() {
			if err := lk.Release(); err != nil {
				log.Warn("Releasing lock: %v", err)
			}
		}()
		log.Debug(cfg.Verbose, "Locked %s", lk.Path)
	}

	ns, err := OpenHost(ctx, cfg, log)
	if err != nil {
		log.Error("%v", err)
		stats.Failed++
		return stats
	}
	defer func() {
		if err := ns.Close(); err != nil {
			log.Warn("Closing %s: %v", cfg.NamespacePath(), err)
		}
	}()

	logBatchHeader(cfg, log, op)

	r := naming.NewRenamer(ns.Host, naming.Options{NumericPolicy: naming.NumericPolicy(cfg.NumericPolicy)})
	outcomes, err := op.Apply(ctx, r)
	if err != nil {
		// The renamer already warned through the host.
		stats.Aborted = true
		log.Record("aborted", zap.String("op", op.Describe()), zap.Error(err))
		log.Error("Nothing renamed: %v", err)
		return stats
	}

	stats.add(outcomes)
	for i, o := range outcomes {
		logOutcome(cfg, log, i+1, len(outcomes), o)
	}
	if ctx.Err() != nil {
		log.Warn("Interrupted")
	}

	if stats.Renamed > 0 {
		if err := ns.Save(); err != nil {
			log.Error("Saving %s failed: %v", cfg.NamespacePath(), err)
			stats.Failed++
		}
	}

	logSummary(cfg, log, &stats)
	return stats
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, op Operation) {
	log.Info("Host: %s (%s)", cfg.Host, cfg.NamespacePath())
	log.Info("%s", op.Describe())
	if cfg.DryRun {
		log.Info("Dry run: nothing will be renamed")
	}
	if cfg.ConfigFile != "" {
		log.Debug(cfg.Verbose, "Config: %s", cfg.ConfigFile)
	}
}

func logOutcome(cfg *config.Config, log *logging.Logger, n, total int, o naming.Outcome) {
	log.Record("outcome",
		zap.String("id", o.Item.ID),
		zap.String("old", o.Item.Name),
		zap.String("new", o.NewName),
		zap.Stringer("status", o.Status),
		zap.Bool("dry_run", cfg.DryRun),
		zap.NamedError("reason", o.Err),
	)

	switch o.Status {
	case naming.StatusRenamed:
		if cfg.DryRun {
			log.Preview("[%d/%d] [DRY] Would rename %s", n, total, display.FormatRename(o.Item.Name, o.NewName))
		} else {
			log.Success("[%d/%d] %s", n, total, display.FormatRename(o.Item.Name, o.NewName))
		}
	case naming.StatusSkipped:
		// Collisions and refusals were already warned by the renamer.
		log.Debug(cfg.Verbose, "[%d/%d] Skipped %s: %s", n, total, o.Item.Name, display.Reason(o))
	default:
		log.Debug(cfg.Verbose, "[%d/%d] Unchanged %s", n, total, o.Item.Name)
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %s", display.FormatSummary(stats.Summary(), cfg.DryRun))
	if stats.Failed > 0 {
		log.Error("%d step(s) failed", stats.Failed)
	}
}
