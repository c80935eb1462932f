package render

import (
	"io"
	"strings"

	"go.trai.ch/tasker/internal/core/domain"
)

// Latex renders an itemize environment indented by a number of tabs.
type Latex struct {
	Indent int
}

// NewLatex creates a Latex renderer with the given indentation depth.
func NewLatex(indent int) *Latex {
	return &Latex{Indent: indent}
}

// Render implements ports.ScheduleRenderer.
func (r *Latex) Render(w io.Writer, entries []domain.ScheduleEntry) error {
	indent := strings.Repeat("\t", max(r.Indent, 0))

	var b strings.Builder
	b.WriteString(indent + "\\begin{itemize}\n")
	for _, e := range entries {
		b.WriteString(indent + "\t\\item " + span(e) + " \\(\\rightarrow\\) " + e.Name + "\n")
	}
	b.WriteString(indent + "\\end{itemize}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
