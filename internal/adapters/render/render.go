// Package render writes gap-filled schedules as terminal text or LaTeX lists.
package render

import (
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/zerr"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatText  Format = "text"
	FormatLatex Format = "latex"
)

// clockLayout renders entry bounds as HH:MM.
const clockLayout = "15:04"

// ForFormat returns the renderer for format. indent only applies to LaTeX.
func ForFormat(format Format, indent int) (ports.ScheduleRenderer, error) {
	switch format {
	case FormatText, "":
		return NewText(), nil
	case FormatLatex:
		if indent < 0 {
			err := zerr.Wrap(domain.ErrNegativeIndent, "indent")
			return nil, zerr.With(err, "indent", indent)
		}
		return NewLatex(indent), nil
	default:
		err := zerr.Wrap(domain.ErrUnknownRenderFormat, string(format))
		return nil, zerr.With(err, "format", string(format))
	}
}

func span(e domain.ScheduleEntry) string {
	return e.Start.Format(clockLayout) + "--" + e.End.Format(clockLayout)
}
