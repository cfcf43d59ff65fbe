package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/naoray/workhere/internal/errors"
)

// isolate points the global config at an empty directory and clears
// WORKHERE_* variables so the developer's own settings cannot leak in.
func isolate(t *testing.T) (globalDir, repoDir string) {
	t.Helper()

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	for _, key := range []string{"DIR", "SCRIPT", "PREFIX", "LOG_LEVEL"} {
		t.Setenv(EnvPrefix+"_"+key, "")
	}

	globalDir = filepath.Join(xdg, "workhere")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	return globalDir, t.TempDir()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	_, repoDir := isolate(t)

	cfg, err := Load(repoDir, nil)

	require.NoError(t, err)
	assert.Equal(t, "", cfg.Dir)
	assert.Equal(t, "", cfg.Script)
	assert.False(t, cfg.Prefix)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, log.WarnLevel, cfg.Level())
}

func TestLoad_GlobalConfig(t *testing.T) {
	globalDir, repoDir := isolate(t)
	writeFile(t, filepath.Join(globalDir, GlobalConfigFile), "prefix: true\nscript: make setup\n")

	cfg, err := Load(repoDir, nil)

	require.NoError(t, err)
	assert.True(t, cfg.Prefix)
	assert.Equal(t, "make setup", cfg.Script)
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	globalDir, repoDir := isolate(t)
	writeFile(t, filepath.Join(globalDir, GlobalConfigFile), "dir: /global/trees\nprefix: true\n")
	writeFile(t, filepath.Join(repoDir, ProjectConfigFile), "dir: trees\n")

	cfg, err := Load(repoDir, nil)

	require.NoError(t, err)
	assert.Equal(t, "trees", cfg.Dir)
	assert.True(t, cfg.Prefix, "keys absent from the project file keep the global value")
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	_, repoDir := isolate(t)
	writeFile(t, filepath.Join(repoDir, ProjectConfigFile), "dir: trees\nlog_level: info\n")
	t.Setenv("WORKHERE_DIR", "/env/trees")
	t.Setenv("WORKHERE_PREFIX", "true")

	cfg, err := Load(repoDir, nil)

	require.NoError(t, err)
	assert.Equal(t, "/env/trees", cfg.Dir)
	assert.True(t, cfg.Prefix)
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoad_FlagsOverrideWhenSet(t *testing.T) {
	_, repoDir := isolate(t)
	writeFile(t, filepath.Join(repoDir, ProjectConfigFile), "script: ./setup.sh\nprefix: true\n")

	flags := pflag.NewFlagSet("add", pflag.ContinueOnError)
	flags.StringP("script", "s", "", "")
	flags.BoolP("prefix", "p", false, "")
	require.NoError(t, flags.Parse([]string{"--script", "make dev"}))

	cfg, err := Load(repoDir, flags)

	require.NoError(t, err)
	assert.Equal(t, "make dev", cfg.Script)
	assert.True(t, cfg.Prefix, "an unset flag does not override the file")
}

func TestLoad_ExpandsHome(t *testing.T) {
	_, repoDir := isolate(t)
	writeFile(t, filepath.Join(repoDir, ProjectConfigFile), "dir: ~/trees\n")

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(repoDir, nil)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "trees"), cfg.Dir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, repoDir := isolate(t)
	writeFile(t, filepath.Join(repoDir, ProjectConfigFile), "dir: [unclosed\n")

	cfg, err := Load(repoDir, nil)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, werrors.ErrConfigInvalid)
	assert.Contains(t, err.Error(), ProjectConfigFile)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	_, repoDir := isolate(t)
	writeFile(t, filepath.Join(repoDir, ProjectConfigFile), "log_level: chatty\n")

	_, err := Load(repoDir, nil)

	assert.ErrorIs(t, err, werrors.ErrConfigInvalid)
}

func TestGlobalConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	dir, err := GlobalConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/workhere", dir)

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	dir, err = GlobalConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "workhere"), dir)
}
