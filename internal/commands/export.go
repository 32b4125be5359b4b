package commands

import (
	"context"
	"io"
	"os"

	"github.com/dastanaron/bookmark-exporter/internal/format"
	"github.com/dastanaron/bookmark-exporter/internal/models"
	"github.com/dastanaron/bookmark-exporter/internal/service"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ExportCommand writes the exported bookmarks to a file or stdout
type ExportCommand struct {
	exporter *service.Exporter
	stdout   io.Writer
	log      zerolog.Logger
}

// NewExportCommand creates a new export command
func NewExportCommand(exporter *service.Exporter, stdout io.Writer, log zerolog.Logger) *ExportCommand {
	return &ExportCommand{
		exporter: exporter,
		stdout:   stdout,
		log:      log,
	}
}

// Execute exports targets in mode to filePath, or to stdout when filePath
// is empty. The file is only created once the export has succeeded.
func (c *ExportCommand) Execute(ctx context.Context, targets []models.Target, mode format.Mode, filePath string) error {
	out, err := c.exporter.Export(ctx, targets, mode)
	if err != nil {
		return err
	}

	if filePath == "" {
		if _, err := io.WriteString(c.stdout, out); err != nil {
			return errors.Wrapf(models.ErrIO, "stdout: %v", err)
		}
		return nil
	}

	file, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(models.ErrIO, "cannot create file %s: %v", filePath, err)
	}
	if _, err := io.WriteString(file, out); err != nil {
		file.Close()
		return errors.Wrapf(models.ErrIO, "%s: %v", filePath, err)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(models.ErrIO, "%s: %v", filePath, err)
	}

	c.log.Info().Str("path", filePath).Int("bytes", len(out)).Msg("bookmarks exported")
	return nil
}
