package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dastanaron/bookmark-exporter/internal/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkProfile(t *testing.T, home, name string) string {
	t.Helper()
	dir := filepath.Join(home, firefoxProfiles, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

func TestLocator_FirefoxPlaces(t *testing.T) {
	t.Run("first match in lexicographic order", func(t *testing.T) {
		home := t.TempDir()
		mkProfile(t, home, "zzzz.default-release")
		want := mkProfile(t, home, "abcd.default-release")
		mkProfile(t, home, "0000.default")

		path, err := New(home).FirefoxPlaces()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(want, "places.sqlite"), path)
	})

	t.Run("files matching the pattern are ignored", func(t *testing.T) {
		home := t.TempDir()
		profiles := filepath.Join(home, firefoxProfiles)
		require.NoError(t, os.MkdirAll(profiles, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(profiles, "aaaa.default-release"), nil, 0644))
		want := mkProfile(t, home, "bbbb.default-release")

		path, err := New(home).FirefoxPlaces()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(want, "places.sqlite"), path)
	})

	t.Run("no profile", func(t *testing.T) {
		home := t.TempDir()
		mkProfile(t, home, "abcd.default")

		_, err := New(home).FirefoxPlaces()
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrProfileNotFound))
		assert.Contains(t, err.Error(), "*.default-release")
	})

	t.Run("missing home", func(t *testing.T) {
		_, err := New("").FirefoxPlaces()
		assert.True(t, errors.Is(err, models.ErrMissingEnvironment))
	})
}

func TestLocator_ChromeBookmarks(t *testing.T) {
	path, err := New("/Users/me").ChromeBookmarks()
	require.NoError(t, err)
	assert.Equal(t, "/Users/me/Library/Application Support/Google/Chrome/Default/Bookmarks", path)

	_, err = New("").ChromeBookmarks()
	assert.True(t, errors.Is(err, models.ErrMissingEnvironment))
}
