package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/ui/output"
	"go.trai.ch/tasker/internal/ui/style"
)

// placeholderMarker stands in for the index of an unscheduled block.
const placeholderMarker = "  : "

// Text renders one numbered line per entry.
// Real entries are numbered from 0; placeholders are unnumbered and faint.
type Text struct{}

// NewText creates a Text renderer.
func NewText() *Text {
	return &Text{}
}

// Render implements ports.ScheduleRenderer.
func (r *Text) Render(w io.Writer, entries []domain.ScheduleEntry) error {
	out := output.New(w)

	var b strings.Builder
	index := 0
	for _, e := range entries {
		line := span(e) + " -> " + e.Name
		if e.IsPlaceholder() {
			b.WriteString(out.String(placeholderMarker + line).Faint().String())
		} else {
			marker := fmt.Sprintf("%2d: ", index)
			index++
			b.WriteString(out.String(marker).Foreground(termenv.RGBColor(string(style.Iris))).String())
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
