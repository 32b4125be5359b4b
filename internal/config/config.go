package config

import (
	"strings"
	"time"

	"github.com/dastanaron/bookmark-exporter/internal/format"
	"github.com/dastanaron/bookmark-exporter/internal/locator"
	"github.com/dastanaron/bookmark-exporter/internal/models"
	"github.com/dastanaron/bookmark-exporter/internal/parser"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the exporter reads,
// except HOME and NO_CLI_COLOR
const EnvPrefix = "BOOKMARK_EXPORTER"

// Config holds application configuration
type Config struct {
	Home            string
	Targets         []models.Target
	Format          format.Mode
	Output          string // empty means stdout
	NoColor         bool
	LogLevel        string
	FirefoxDB       string
	ChromeBookmarks string
	ChromeRoots     []string
	ContinueOnError bool
	Timeout         time.Duration
	Browse          bool
	ShowVersion     bool
}

// NewFlagSet defines the command line flags read by Load
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	fs.BoolP("firefox", "f", false, "Export Firefox bookmarks")
	fs.BoolP("chrome", "c", false, "Export Chrome bookmarks")
	fs.String("format", string(format.ModePlain), "Output format: plain, link or html")
	fs.BoolP("links", "l", false, "Shorthand for --format link")
	fs.StringP("output", "o", "", "Output file (default: standard output)")
	fs.String("firefox-db", "", "Path to places.sqlite (skips profile lookup)")
	fs.String("chrome-bookmarks", "", "Path to the Chrome Bookmarks file")
	fs.StringSlice("chrome-roots", parser.DefaultRoots, "Chrome root folders to export, in order")
	fs.Bool("continue-on-error", false, "Keep exporting the other browser when one fails")
	fs.Duration("timeout", 0, "Abort the export after this long (0 disables)")
	fs.BoolP("browse", "b", false, "Browse the bookmarks interactively instead of writing them")
	fs.BoolP("no-color", "n", false, "Disable colors in log output")
	fs.String("log-level", "info", "Log level: debug, info, warn or error")
	fs.String("env-file", "", "Load environment variables from this file first")
	fs.BoolP("version", "V", false, "Print version information")

	return fs
}

// Load parses args into fs and resolves the configuration from flags,
// the environment and defaults, in that order of precedence.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if envFile, _ := fs.GetString("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "cannot load env file %s", envFile)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if err := v.BindEnv("home", locator.HomeEnv); err != nil {
		return nil, err
	}
	if err := v.BindEnv("no-color", "NO_CLI_COLOR", EnvPrefix+"_NO_COLOR"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Home:            v.GetString("home"),
		NoColor:         v.GetBool("no-color"),
		LogLevel:        v.GetString("log-level"),
		FirefoxDB:       v.GetString("firefox-db"),
		ChromeBookmarks: v.GetString("chrome-bookmarks"),
		ChromeRoots:     splitList(v.GetStringSlice("chrome-roots")),
		ContinueOnError: v.GetBool("continue-on-error"),
		Timeout:         v.GetDuration("timeout"),
		Browse:          v.GetBool("browse"),
		ShowVersion:     v.GetBool("version"),
		Output:          v.GetString("output"),
	}

	cfg.Targets = selectTargets(v.GetBool("firefox"), v.GetBool("chrome"))

	mode := v.GetString("format")
	if v.GetBool("links") {
		mode = string(format.ModeLink)
	}
	m, err := format.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	cfg.Format = m

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		cfg.Output = rest[0]
	default:
		return nil, errors.Errorf("unexpected arguments: %s", strings.Join(rest[1:], " "))
	}

	return cfg, nil
}

// selectTargets returns the requested targets in export order.
// When neither is requested every target is exported.
func selectTargets(firefox, chrome bool) []models.Target {
	if !firefox && !chrome {
		return append([]models.Target(nil), models.Targets...)
	}

	var targets []models.Target
	if firefox {
		targets = append(targets, models.TargetFirefox)
	}
	if chrome {
		targets = append(targets, models.TargetChrome)
	}
	return targets
}

// splitList flattens comma separated items, as read from the environment
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, s := range strings.Split(item, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
