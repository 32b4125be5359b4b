package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dastanaron/bookmark-exporter/internal/format"
	"github.com/dastanaron/bookmark-exporter/internal/models"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	return Load(NewFlagSet("test"), args)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", "/Users/me")
	t.Setenv("NO_CLI_COLOR", "")

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, "/Users/me", cfg.Home)
	assert.Equal(t, []models.Target{models.TargetFirefox, models.TargetChrome}, cfg.Targets)
	assert.Equal(t, format.ModePlain, cfg.Format)
	assert.Equal(t, "", cfg.Output)
	assert.Equal(t, []string{"bookmark_bar", "other"}, cfg.ChromeRoots)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.Timeout)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.ContinueOnError)
	assert.False(t, cfg.Browse)
}

func TestLoad_Flags(t *testing.T) {
	t.Setenv("HOME", "/Users/me")

	tt := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "chrome only",
			args: []string{"-c"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []models.Target{models.TargetChrome}, cfg.Targets)
			},
		},
		{
			name: "target order is fixed",
			args: []string{"--chrome", "--firefox"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []models.Target{models.TargetFirefox, models.TargetChrome}, cfg.Targets)
			},
		},
		{
			name: "links shorthand",
			args: []string{"-l"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, format.ModeLink, cfg.Format)
			},
		},
		{
			name: "html format and output file",
			args: []string{"--format", "html", "out.html"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, format.ModeHTML, cfg.Format)
				assert.Equal(t, "out.html", cfg.Output)
			},
		},
		{
			name: "overrides",
			args: []string{"--firefox-db", "/tmp/p.sqlite", "--chrome-bookmarks", "/tmp/B", "--chrome-roots", "other,synced", "--timeout", "2s", "--continue-on-error", "-n"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/p.sqlite", cfg.FirefoxDB)
				assert.Equal(t, "/tmp/B", cfg.ChromeBookmarks)
				assert.Equal(t, []string{"other", "synced"}, cfg.ChromeRoots)
				assert.Equal(t, 2*time.Second, cfg.Timeout)
				assert.True(t, cfg.ContinueOnError)
				assert.True(t, cfg.NoColor)
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := load(t, tc.args...)
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HOME", "/Users/env")
	t.Setenv("NO_CLI_COLOR", "true")
	t.Setenv("BOOKMARK_EXPORTER_FORMAT", "link")
	t.Setenv("BOOKMARK_EXPORTER_CHROME_ROOTS", "synced,bookmark_bar")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "/Users/env", cfg.Home)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, format.ModeLink, cfg.Format)
	assert.Equal(t, []string{"synced", "bookmark_bar"}, cfg.ChromeRoots)

	// flags win over the environment
	cfg, err = load(t, "--format", "plain")
	require.NoError(t, err)
	assert.Equal(t, format.ModePlain, cfg.Format)
}

func TestLoad_MissingHomeIsNotAnError(t *testing.T) {
	t.Setenv("HOME", "")
	os.Unsetenv("HOME")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Home)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("BOOKMARK_EXPORTER_LOG_LEVEL", "")
	os.Unsetenv("BOOKMARK_EXPORTER_LOG_LEVEL")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BOOKMARK_EXPORTER_LOG_LEVEL=debug\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("BOOKMARK_EXPORTER_LOG_LEVEL") })

	cfg, err := load(t, "--env-file", path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = load(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := load(t, "--format", "csv")
	assert.True(t, errors.Is(err, models.ErrUnknownFormat))

	_, err = load(t, "a.txt", "b.txt")
	assert.Error(t, err)

	_, err = load(t, "--help")
	assert.True(t, errors.Is(err, pflag.ErrHelp))
}
