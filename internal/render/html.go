package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTML materializes a StageView as the interactive stage page.
type HTML struct {
	tmpl           *template.Template
	shuffleEnabled bool
}

type pageData struct {
	Stage          StageView
	ShuffleEnabled bool
}

func NewHTML(shuffleEnabled bool) (*HTML, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/stage.html")
	if err != nil {
		return nil, fmt.Errorf("parse stage template: %w", err)
	}
	return &HTML{tmpl: tmpl, shuffleEnabled: shuffleEnabled}, nil
}

func (h *HTML) Render(w io.Writer, stage StageView) error {
	return h.tmpl.ExecuteTemplate(w, "stage.html", pageData{Stage: stage, ShuffleEnabled: h.shuffleEnabled})
}
