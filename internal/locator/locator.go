package locator

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/dastanaron/bookmark-exporter/internal/models"

	"github.com/pkg/errors"
)

// HomeEnv is the environment variable that roots every default store path
const HomeEnv = "HOME"

const (
	firefoxProfiles = "Library/Application Support/Firefox/Profiles"
	firefoxPattern  = "*.default-release"
	firefoxDBName   = "places.sqlite"

	chromeBookmarks = "Library/Application Support/Google/Chrome/Default/Bookmarks"
)

// Locator resolves the on-disk bookmark stores below a home directory
type Locator struct {
	home string
}

// New creates a locator rooted at home, normally the value of $HOME.
// An empty home is accepted here and reported when a path is requested.
func New(home string) *Locator {
	return &Locator{home: home}
}

// FirefoxPattern returns the glob used to find the default-release profile
func (l *Locator) FirefoxPattern() (string, error) {
	if l.home == "" {
		return "", errors.Wrapf(models.ErrMissingEnvironment, "$%s", HomeEnv)
	}
	return filepath.Join(l.home, firefoxProfiles, firefoxPattern), nil
}

// FirefoxPlaces returns the places.sqlite path of the first matching profile.
// Matches are ordered lexicographically and only directories are considered.
func (l *Locator) FirefoxPlaces() (string, error) {
	pattern, err := l.FirefoxPattern()
	if err != nil {
		return "", err
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", errors.Wrapf(models.ErrProfileNotFound, "bad pattern %s: %v", pattern, err)
	}
	sort.Strings(matches)

	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.IsDir() {
			continue
		}
		return filepath.Join(m, firefoxDBName), nil
	}
	return "", errors.Wrapf(models.ErrProfileNotFound, "no directory matches %s", pattern)
}

// ChromeBookmarks returns the fixed path of the Chrome bookmarks document.
// The file itself is not checked; a missing file is reported when it is read.
func (l *Locator) ChromeBookmarks() (string, error) {
	if l.home == "" {
		return "", errors.Wrapf(models.ErrMissingEnvironment, "$%s", HomeEnv)
	}
	return filepath.Join(l.home, chromeBookmarks), nil
}
