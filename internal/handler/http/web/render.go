package web

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/shenikar/ocean_watch/internal/classify"
	"github.com/shenikar/ocean_watch/internal/form"
)

const layoutTemplate = "layout.tmpl"

var pageTemplates = []string{
	"dashboard.tmpl",
	"map.tmpl",
	"report.tmpl",
	"social.tmpl",
	"placeholder.tmpl",
	"not_found.tmpl",
}

// Renderer хранит отдельный набор шаблонов на каждую страницу: layout + content
type Renderer struct {
	pages map[string]*template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"severityDot":     classify.SeverityDot,
		"severityVariant": classify.ReportSeverityVariant,
		"statusBadge":     classify.StatusBadge,
		"sentiment":       classify.SentimentVariant,
		"platformColor":   classify.PlatformColor,
		"hazardLabel":     form.HazardTypeLabel,
		"percent":         func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"contains": func(list []string, v string) bool {
			for _, item := range list {
				if item == v {
					return true
				}
			}
			return false
		},
	}
}

// NewRenderer разбирает шаблоны из каталога dir
func NewRenderer(dir string) (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageTemplates))}
	layout := filepath.Join(dir, layoutTemplate)
	for _, page := range pageTemplates {
		t, err := template.New(layoutTemplate).Funcs(templateFuncs()).ParseFiles(layout, filepath.Join(dir, page))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render исполняет layout со страницей page в буфер, чтобы ошибка шаблона не оставила полуответ
func (r *Renderer) Render(page string, data any) ([]byte, error) {
	t, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page template %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", page, err)
	}
	return buf.Bytes(), nil
}
