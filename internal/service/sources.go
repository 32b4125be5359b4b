package service

import (
	"context"

	"github.com/dastanaron/bookmark-exporter/internal/locator"
	"github.com/dastanaron/bookmark-exporter/internal/models"
	"github.com/dastanaron/bookmark-exporter/internal/parser"
	"github.com/dastanaron/bookmark-exporter/internal/repository"
)

// Source extracts the records of one target
type Source interface {
	Target() models.Target
	Extract(ctx context.Context) ([]models.Record, error)
}

// FirefoxSource reads places.sqlite, found through the locator unless a
// path is given
type FirefoxSource struct {
	locator *locator.Locator
	path    string
}

// NewFirefoxSource creates a Firefox source. An empty path means the
// default-release profile below the locator's home.
func NewFirefoxSource(l *locator.Locator, path string) *FirefoxSource {
	return &FirefoxSource{locator: l, path: path}
}

// Target returns models.TargetFirefox
func (s *FirefoxSource) Target() models.Target {
	return models.TargetFirefox
}

// Extract resolves the database and reads every record from it
func (s *FirefoxSource) Extract(ctx context.Context) ([]models.Record, error) {
	path := s.path
	if path == "" {
		var err error
		if path, err = s.locator.FirefoxPlaces(); err != nil {
			return nil, err
		}
	}
	return repository.ReadPlaces(ctx, path)
}

// ChromeSource flattens the Chrome Bookmarks document
type ChromeSource struct {
	locator *locator.Locator
	path    string
	parser  *parser.Parser
}

// NewChromeSource creates a Chrome source. An empty path means the default
// profile below the locator's home.
func NewChromeSource(l *locator.Locator, path string, p *parser.Parser) *ChromeSource {
	if p == nil {
		p = parser.NewParser()
	}
	return &ChromeSource{locator: l, path: path, parser: p}
}

// Target returns models.TargetChrome
func (s *ChromeSource) Target() models.Target {
	return models.TargetChrome
}

// Extract reads and flattens the bookmarks document
func (s *ChromeSource) Extract(ctx context.Context) ([]models.Record, error) {
	path := s.path
	if path == "" {
		var err error
		if path, err = s.locator.ChromeBookmarks(); err != nil {
			return nil, err
		}
	}
	return s.parser.ParseFile(ctx, path)
}
