// Package check provides namespace diagnostics (the check command) and the
// preflight used before a run: does the backing directory, scene file or
// database exist, can it be written, and is the namespace lock free.
package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/backmassage/batchrename/internal/config"
	"github.com/backmassage/batchrename/internal/host"
	"github.com/backmassage/batchrename/internal/lock"
)

// Sentinel errors returned by CheckNamespace.
var (
	ErrNamespaceMissing = errors.New("namespace path does not exist")
	ErrWrongKind        = errors.New("namespace path has the wrong type")
	ErrNotWritable      = errors.New("namespace is not writable")
	ErrLockBusy         = errors.New("namespace is locked by another run")
)

// lockProbeTimeout bounds the lock test so check never hangs on a busy namespace.
const lockProbeTimeout = 200 * time.Millisecond

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive check flow and reports whether every probe
// passed. It never changes names.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) bool {
	log.Info("=== Namespace Check ===")
	log.Info("Host: %s", cfg.Host)
	if cfg.ConfigFile != "" {
		log.Info("Config file: %s", cfg.ConfigFile)
	} else {
		log.Info("Config file: none (defaults, environment and flags)")
	}

	ok := true
	switch cfg.Host {
	case config.HostDir:
		ok = checkDir(cfg, log)
	case config.HostScene:
		ok = checkScene(cfg, log)
	case config.HostDB:
		ok = checkDB(ctx, cfg, log)
	default:
		log.Error("Unknown host %q", cfg.Host)
		return false
	}
	if !ok {
		return false
	}
	return checkLock(ctx, cfg, log)
}

// CheckNamespace is the non-interactive preflight: nil when the namespace
// exists with the right type, is writable and is not locked.
func CheckNamespace(ctx context.Context, cfg *config.Config) error {
	path := cfg.NamespacePath()
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNamespaceMissing, path)
	}
	if (cfg.Host == config.HostDir) != fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrWrongKind, path)
	}
	dir := path
	if !fi.IsDir() {
		dir = filepath.Dir(path)
	}
	if err := probeWritable(dir); err != nil {
		return fmt.Errorf("%w: %v", ErrNotWritable, err)
	}
	lk, err := lock.Acquire(ctx, path, lockProbeTimeout)
	if err != nil {
		if errors.Is(err, lock.ErrLockTimeout) {
			return fmt.Errorf("%w: %s", ErrLockBusy, path)
		}
		return err
	}
	return lk.Release()
}

// checkDir verifies the directory exists and can take a rename.
func checkDir(cfg *config.Config, log Logger) bool {
	fi, err := os.Stat(cfg.Dir)
	if err != nil {
		log.Error("Directory not found: %s", cfg.Dir)
		return false
	}
	if !fi.IsDir() {
		log.Error("Not a directory: %s", cfg.Dir)
		return false
	}
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		log.Error("Cannot read %s: %v", cfg.Dir, err)
		return false
	}
	log.Success("Directory: %s (%d entries)", cfg.Dir, len(entries))
	return checkWritable(cfg.Dir, log)
}

// checkScene parses the scene and verifies its directory takes the atomic save.
func checkScene(cfg *config.Config, log Logger) bool {
	doc, err := host.ReadScene(cfg.SceneFile)
	if err != nil {
		log.Error("Scene %s: %v", cfg.SceneFile, err)
		return false
	}
	log.Success("Scene: %s (%d objects, %d selected)", cfg.SceneFile, len(doc.Objects), len(doc.Selection))
	if len(doc.Selection) == 0 && len(cfg.Select) == 0 {
		log.Warn("Scene has no selection; pass --select to choose objects")
	}
	return checkWritable(filepath.Dir(cfg.SceneFile), log)
}

// checkDB opens the database (applying migrations) and counts objects.
func checkDB(ctx context.Context, cfg *config.Config, log Logger) bool {
	if _, err := os.Stat(cfg.DBPath); err != nil {
		log.Error("Database not found: %s (create it with 'scene import')", cfg.DBPath)
		return false
	}
	st, err := host.OpenStore(ctx, cfg.DBPath, nil)
	if err != nil {
		log.Error("Database %s: %v", cfg.DBPath, err)
		return false
	}
	defer st.Close()

	objs, err := st.Objects(ctx)
	if err != nil {
		log.Error("Database %s: %v", cfg.DBPath, err)
		return false
	}
	sel, err := st.Selection(ctx)
	if err != nil {
		log.Error("Database %s: %v", cfg.DBPath, err)
		return false
	}
	log.Success("Database: %s (%d objects, %d selected)", cfg.DBPath, len(objs), len(sel))
	return true
}

// checkWritable logs the result of a write probe in dir.
func checkWritable(dir string, log Logger) bool {
	if err := probeWritable(dir); err != nil {
		log.Error("Not writable: %s (%v)", dir, err)
		return false
	}
	log.Debug(true, "Writable: %s", dir)
	return true
}

// probeWritable creates and removes a temp file in dir.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".batchrename-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// checkLock takes and releases the namespace lock.
func checkLock(ctx context.Context, cfg *config.Config, log Logger) bool {
	lk, err := lock.Acquire(ctx, cfg.NamespacePath(), lockProbeTimeout)
	if err != nil {
		if errors.Is(err, lock.ErrLockTimeout) {
			log.Warn("Namespace is locked by another batchrename run")
		} else {
			log.Error("Lock test failed: %v", err)
		}
		return false
	}
	defer lk.Release()
	log.Success("Lock: %s is free", lk.Path)
	return true
}
