// Package config loads workhere settings from layered sources.
//
// Precedence, lowest first: built-in defaults, the global config file, the
// project's .workhere.yaml, WORKHERE_* environment variables, and finally
// command-line flags that were explicitly set.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	werrors "github.com/naoray/workhere/internal/errors"
	"github.com/naoray/workhere/internal/utils"
)

const (
	// ProjectConfigFile lives in the repository root.
	ProjectConfigFile = ".workhere.yaml"

	// GlobalConfigFile lives in GlobalConfigDir.
	GlobalConfigFile = "config.yaml"

	EnvPrefix = "WORKHERE"

	DefaultLogLevel = "warn"
)

// Config keys.
const (
	KeyDir      = "dir"
	KeyScript   = "script"
	KeyPrefix   = "prefix"
	KeyLogLevel = "log_level"
)

// Config represents the resolved configuration for one invocation.
type Config struct {
	// Dir overrides where managed worktrees are created. Relative values are
	// resolved against the repository root.
	Dir string `mapstructure:"dir"`

	// Script runs in every new worktree after creation.
	Script string `mapstructure:"script"`

	// Prefix prepends the repository folder name to worktree folders.
	Prefix bool `mapstructure:"prefix"`

	LogLevel string `mapstructure:"log_level"`
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// GlobalConfigDir returns $XDG_CONFIG_HOME/workhere, falling back to
// ~/.config/workhere.
func GlobalConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "workhere"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".config", "workhere"), nil
}

// Load resolves the configuration for the repository at repoRoot. Flags that
// match a config key (script, prefix) take precedence when they were set.
// Missing config files are not an error.
func Load(repoRoot string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if globalDir, err := GlobalConfigDir(); err == nil {
		if err := mergeFile(v, filepath.Join(globalDir, GlobalConfigFile)); err != nil {
			return nil, err
		}
	}

	if repoRoot != "" {
		if err := mergeFile(v, filepath.Join(repoRoot, ProjectConfigFile)); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		for _, key := range []string{KeyScript, KeyPrefix} {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(expandHomeHook())); err != nil {
		return nil, fmt.Errorf("%w: %v", werrors.ErrConfigInvalid, err)
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%w: log_level %q", werrors.ErrConfigInvalid, cfg.LogLevel)
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault(KeyDir, "")
	v.SetDefault(KeyScript, "")
	v.SetDefault(KeyPrefix, false)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// mergeFile merges the YAML file at path into v if it exists.
func mergeFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("%w: reading %s: %v", werrors.ErrConfigInvalid, path, err)
	}
	return nil
}

// expandHomeHook expands a leading ~ in string values such as dir and script.
func expandHomeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}
		return utils.ExpandHome(data.(string)), nil
	}
}
