package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment overrides: BATCHRENAME_DRY_RUN -> dry_run.
const EnvPrefix = "BATCHRENAME_"

// configFileNames are looked up in the working directory when no --config is given.
var configFileNames = []string{"batchrename.yaml", "batchrename.yml"}

// findConfigFile returns the config file to load.
// Priority: explicit path > batchrename.yaml > batchrename.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// defaults returns the defaults layer keyed by config path.
func defaults() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"host":           string(d.Host),
		"dir":            d.Dir,
		"keep_extension": d.KeepExtension,
		"start":          d.Start,
		"padding":        d.Padding,
		"numeric_policy": string(d.NumericPolicy),
		"dry_run":        d.DryRun,
		"lock_timeout":   d.LockTimeout,
		"verbose":        d.Verbose,
		"color":          string(d.ColorMode),
		"table":          d.ShowTable,
	}
}

// Load builds a Config from defaults, the config file, BATCHRENAME_*
// environment variables and flags, then validates it.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// BATCHRENAME_LOCK_TIMEOUT -> lock_timeout; BATCHRENAME_SELECT is comma separated.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if key == "select" {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only flags the user set; registered defaults are already in the defaults layer.
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFile = used

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
