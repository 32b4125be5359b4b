package format

import (
	"fmt"
	"strings"

	"github.com/dastanaron/bookmark-exporter/internal/models"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Mode selects how records are rendered
type Mode string

const (
	// ModePlain writes the title and the URL on two lines
	ModePlain Mode = "plain"
	// ModeLink writes one [title](url) line per record
	ModeLink Mode = "link"
	// ModeHTML writes a Netscape bookmark file
	ModeHTML Mode = "html"
)

// Modes lists the supported modes
var Modes = []Mode{ModePlain, ModeLink, ModeHTML}

// ParseMode converts a mode name into a Mode
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.Wrapf(models.ErrUnknownFormat, "%q", s)
}

// Format renders records in mode. Records keep their order and an empty
// slice renders as the empty string.
func Format(records []models.Record, mode Mode) (string, error) {
	var sb strings.Builder
	switch mode {
	case ModePlain:
		for _, r := range records {
			sb.WriteString(r.Title)
			sb.WriteByte('\n')
			sb.WriteString(r.URL)
			sb.WriteByte('\n')
		}
	case ModeLink:
		for _, r := range records {
			fmt.Fprintf(&sb, "[%s](%s)\n", r.Title, r.URL)
		}
	case ModeHTML:
		writeNetscape(&sb, records)
	default:
		return "", errors.Wrapf(models.ErrUnknownFormat, "%q", mode)
	}
	return sb.String(), nil
}

func writeNetscape(sb *strings.Builder, records []models.Record) {
	if len(records) == 0 {
		return
	}

	sb.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	sb.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	sb.WriteString("<TITLE>Bookmarks</TITLE>\n")
	sb.WriteString("<H1>Bookmarks</H1>\n")
	sb.WriteString("<DL><p>\n")
	for _, r := range records {
		fmt.Fprintf(sb, "    <DT><A HREF=\"%s\">%s</A>\n", html.EscapeString(r.URL), html.EscapeString(r.Title))
	}
	sb.WriteString("</DL><p>\n")
}
