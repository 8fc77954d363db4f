// Package config holds runtime configuration: defaults, flag registration,
// layered loading (defaults, config file, environment, flags) and
// validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// HostKind selects the namespace the renames are applied to.
type HostKind string

const (
	HostDir   HostKind = "dir"   // Files in one directory (default).
	HostScene HostKind = "scene" // Objects in a YAML scene file.
	HostDB    HostKind = "db"    // Objects in a SQLite scene database.
)

// NumericPolicy controls what happens to a base name made only of digits.
type NumericPolicy string

const (
	NumericReject NumericPolicy = "reject" // Abort the operation (default).
	NumericPrefix NumericPolicy = "prefix" // Prefix "_" and continue.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It starts from [DefaultConfig] and is
// overlaid by [Load]. Keys are the koanf paths used in config files and,
// upper-cased with a BATCHRENAME_ prefix, in the environment.
type Config struct {
	// Namespace.
	Host          HostKind `koanf:"host"`
	Dir           string   `koanf:"dir"`            // Default: ".".
	SceneFile     string   `koanf:"scene"`          // Required for host=scene.
	DBPath        string   `koanf:"db"`             // Required for host=db.
	Select        []string `koanf:"select"`         // Patterns (dir) or object names (scene, db).
	KeepExtension bool     `koanf:"keep_extension"` // Default: true. Dir host renames the stem only.

	// Numbering. Kept as text; the renamer parses them.
	Start         string        `koanf:"start"`   // Default: "1".
	Padding       string        `koanf:"padding"` // Default: "3".
	NumericPolicy NumericPolicy `koanf:"numeric_policy"`

	// Behavior.
	DryRun      bool          `koanf:"dry_run"`
	LockTimeout time.Duration `koanf:"lock_timeout"` // Default: 5s.

	// Display and logging.
	Verbose   bool      `koanf:"verbose"`
	ColorMode ColorMode `koanf:"color"`    // Default: "auto".
	LogFile   string    `koanf:"log_file"` // Optional structured log file.
	ShowTable bool      `koanf:"table"`    // Default: true.

	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// Default values shared by DefaultConfig and the koanf defaults layer.
const (
	DefaultDir         = "."
	DefaultStart       = "1"
	DefaultPadding     = "3"
	DefaultLockTimeout = 5 * time.Second
)

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		Host:          HostDir,
		Dir:           DefaultDir,
		KeepExtension: true,
		Start:         DefaultStart,
		Padding:       DefaultPadding,
		NumericPolicy: NumericReject,
		DryRun:        false,
		LockTimeout:   DefaultLockTimeout,
		Verbose:       false,
		ColorMode:     ColorAuto,
		ShowTable:     true,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and that the path needed by the selected host
// is set. Dir is normalized in place.
func (c *Config) Validate() error {
	switch c.Host {
	case HostDir:
		if c.Dir == "" {
			return errors.New("dir host needs a directory (--dir)")
		}
		c.Dir = NormalizeDirArg(c.Dir)
	case HostScene:
		if c.SceneFile == "" {
			return errors.New("scene host needs a scene file (--scene)")
		}
	case HostDB:
		if c.DBPath == "" {
			return errors.New("db host needs a database path (--db)")
		}
	default:
		return fmt.Errorf("invalid host %q (use 'dir', 'scene' or 'db')", c.Host)
	}

	switch c.NumericPolicy {
	case NumericReject, NumericPrefix:
		// valid
	default:
		return fmt.Errorf("invalid numeric policy %q (use 'reject' or 'prefix')", c.NumericPolicy)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.LockTimeout <= 0 {
		return errors.New("lock timeout must be positive")
	}
	return nil
}

// NamespacePath returns the path that backs the selected host: the
// directory, the scene file or the database.
func (c *Config) NamespacePath() string {
	switch c.Host {
	case HostScene:
		return c.SceneFile
	case HostDB:
		return c.DBPath
	}
	return c.Dir
}
