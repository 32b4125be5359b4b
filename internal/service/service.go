package service

import (
	"context"
	"strings"

	"github.com/dastanaron/bookmark-exporter/internal/format"
	"github.com/dastanaron/bookmark-exporter/internal/models"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Exporter runs the extraction pipeline of each requested target
type Exporter struct {
	sources         map[models.Target]Source
	log             zerolog.Logger
	continueOnError bool
}

// NewExporter creates an exporter over sources, at most one per target
func NewExporter(log zerolog.Logger, sources ...Source) *Exporter {
	e := &Exporter{
		sources: make(map[models.Target]Source, len(sources)),
		log:     log,
	}
	for _, s := range sources {
		e.sources[s.Target()] = s
	}
	return e
}

// WithContinueOnError makes a failed target a warning instead of an error
func (e *Exporter) WithContinueOnError(v bool) *Exporter {
	e.continueOnError = v
	return e
}

// orderTargets returns the requested targets in export order, without
// duplicates. Nothing requested means every target.
func orderTargets(requested []models.Target) ([]models.Target, error) {
	if len(requested) == 0 {
		return models.Targets, nil
	}

	want := make(map[models.Target]bool, len(requested))
	for _, t := range requested {
		if _, err := models.ParseTarget(string(t)); err != nil {
			return nil, err
		}
		want[t] = true
	}

	var out []models.Target
	for _, t := range models.Targets {
		if want[t] {
			out = append(out, t)
		}
	}
	return out, nil
}

// Extract runs the requested targets in order. It stops at the first
// failure unless continue-on-error is set, in which case it fails only when
// every target failed.
func (e *Exporter) Extract(ctx context.Context, targets []models.Target) ([]models.Section, error) {
	ordered, err := orderTargets(targets)
	if err != nil {
		return nil, err
	}

	var sections []models.Section
	var firstErr error
	for _, t := range ordered {
		src, ok := e.sources[t]
		if !ok {
			return nil, errors.Wrapf(models.ErrUnknownTarget, "no source configured for %s", t)
		}

		records, err := src.Extract(ctx)
		if err != nil {
			if !e.continueOnError {
				return nil, errors.WithMessagef(err, "%s", t)
			}
			e.log.Warn().Err(err).Str("target", string(t)).Msg("skipping target")
			if firstErr == nil {
				firstErr = errors.WithMessagef(err, "%s", t)
			}
			continue
		}

		e.log.Debug().Str("target", string(t)).Int("records", len(records)).Msg("extracted")
		sections = append(sections, models.Section{Target: t, Records: records})
	}

	if len(sections) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return sections, nil
}

// Export extracts the requested targets and concatenates their output in
// mode. On failure it returns no output.
func (e *Exporter) Export(ctx context.Context, targets []models.Target, mode format.Mode) (string, error) {
	sections, err := e.Extract(ctx, targets)
	if err != nil {
		return "", err
	}

	// a Netscape file has a single header, so html renders all records at once
	if mode == format.ModeHTML {
		var all []models.Record
		for _, s := range sections {
			all = append(all, s.Records...)
		}
		return format.Format(all, mode)
	}

	var sb strings.Builder
	for _, s := range sections {
		out, err := format.Format(s.Records, mode)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}
