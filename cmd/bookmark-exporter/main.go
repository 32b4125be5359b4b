package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dastanaron/bookmark-exporter/internal/commands"
	"github.com/dastanaron/bookmark-exporter/internal/config"
	"github.com/dastanaron/bookmark-exporter/internal/locator"
	"github.com/dastanaron/bookmark-exporter/internal/logger"
	"github.com/dastanaron/bookmark-exporter/internal/parser"
	"github.com/dastanaron/bookmark-exporter/internal/service"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const name = "bookmark-exporter"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := config.NewFlagSet(name)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Export Firefox and Chrome bookmarks as text.\n\nUsage: %s [flags] [OUTPUT_FILE]\n\n", name)
		fs.PrintDefaults()
	}

	cfg, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		log := logger.New(stderr, logger.Options{})
		log.Error().Err(err).Msg("invalid arguments")
		return 1
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "%s %s\n", name, version)
		return 0
	}

	log := logger.New(stderr, logger.Options{NoColor: cfg.NoColor, Level: cfg.LogLevel})

	l := locator.New(cfg.Home)
	exporter := service.NewExporter(log,
		service.NewFirefoxSource(l, cfg.FirefoxDB),
		service.NewChromeSource(l, cfg.ChromeBookmarks, parser.NewParser(cfg.ChromeRoots...)),
	).WithContinueOnError(cfg.ContinueOnError)

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if cfg.Browse {
		err = commands.NewBrowseCommand(exporter).Execute(ctx, cfg.Targets)
	} else {
		err = commands.NewExportCommand(exporter, stdout, log).Execute(ctx, cfg.Targets, cfg.Format, cfg.Output)
	}
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		return 1
	}
	return 0
}
