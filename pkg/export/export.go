// Package export holds the four document encoders. All of them consume a
// detached snapshot from the working copy; none of them ever reads live
// draft state, so an export in flight is immune to further edits.
package export

import (
	"fmt"
	"strings"

	"tableflip.dev/sojourn/pkg/scope"
)

// Format selects one of the output encodings.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatICal Format = "ical"
	FormatPDF  Format = "pdf"
)

// Formats returns the supported output encodings.
func Formats() []Format {
	return []Format{FormatJSON, FormatText, FormatICal, FormatPDF}
}

// ParseFormat resolves a format by name.
func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range Formats() {
		if candidate == f {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("export: unknown format %q", raw)
}

// Ext returns the file extension for the format's artifact.
func (f Format) Ext() string {
	switch f {
	case FormatICal:
		return ".ics"
	case FormatText:
		return ".txt"
	default:
		return "." + string(f)
	}
}

// Options are the knobs shared by every encoder.
type Options struct {
	Scope    scope.Scope
	Template scope.Template
	PerPage  int
}
