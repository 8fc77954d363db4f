package config

// This file registers CLI flags. Flags are grouped into namespace, behavior,
// display and numbering. Defaults come from DefaultConfig so --help shows the
// effective values; Load only applies flags the user actually set.

import (
	"strings"

	"github.com/spf13/pflag"
)

// RegisterFlags registers the flags shared by every command.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	defineNamespaceFlags(fs, d)
	defineBehaviorFlags(fs, d)
	defineDisplayFlags(fs, d)
}

// RegisterNumberingFlags registers --start, --padding and --numeric-policy.
func RegisterNumberingFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String("start", d.Start, "First index of the numbering")
	fs.String("padding", d.Padding, "Minimum digits of the index (zero-filled)")
	fs.String("numeric-policy", string(d.NumericPolicy), "Digits-only base name: reject | prefix")
}

// defineNamespaceFlags registers --host, --dir, --scene, --db, -s/--select, --keep-extension.
func defineNamespaceFlags(fs *pflag.FlagSet, d Config) {
	fs.String("host", string(d.Host), "Namespace: dir | scene | db")
	fs.String("dir", d.Dir, "Directory whose files are renamed (host=dir)")
	fs.String("scene", d.SceneFile, "YAML scene file (host=scene)")
	fs.String("db", d.DBPath, "SQLite scene database (host=db)")
	fs.StringSliceP("select", "s", d.Select, "Glob patterns (dir) or object names (scene, db) to select, in order")
	fs.Bool("keep-extension", d.KeepExtension, "Rename the file stem only and keep the extension (host=dir)")
}

// defineBehaviorFlags registers -n/--dry-run and --lock-timeout.
func defineBehaviorFlags(fs *pflag.FlagSet, d Config) {
	fs.BoolP("dry-run", "n", d.DryRun, "Preview only; do not rename anything")
	fs.Duration("lock-timeout", d.LockTimeout, "How long to wait for another run holding the namespace")
}

// defineDisplayFlags registers --color, -v/--verbose, -l/--log-file, --table.
func defineDisplayFlags(fs *pflag.FlagSet, d Config) {
	fs.String("color", string(d.ColorMode), "Colored output: auto | always | never")
	fs.BoolP("verbose", "v", d.Verbose, "Verbose output")
	fs.StringP("log-file", "l", d.LogFile, "Append structured logs to file")
	fs.Bool("table", d.ShowTable, "Print a table of per-item results")
}

// flagKey maps a flag name to its config key (kebab-case to snake_case).
func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
