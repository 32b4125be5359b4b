package commands

import (
	"context"

	"github.com/dastanaron/bookmark-exporter/internal/models"
	"github.com/dastanaron/bookmark-exporter/internal/service"
	"github.com/dastanaron/bookmark-exporter/internal/ui"
)

// BrowseCommand shows the exported bookmarks in the terminal UI
type BrowseCommand struct {
	exporter *service.Exporter
	run      func(*ui.App) error
}

// NewBrowseCommand creates a new browse command
func NewBrowseCommand(exporter *service.Exporter) *BrowseCommand {
	return &BrowseCommand{
		exporter: exporter,
		run:      (*ui.App).Run,
	}
}

// Execute extracts targets and runs the viewer until the user quits
func (c *BrowseCommand) Execute(ctx context.Context, targets []models.Target) error {
	sections, err := c.exporter.Extract(ctx, targets)
	if err != nil {
		return err
	}
	return c.run(ui.NewApp(sections))
}
