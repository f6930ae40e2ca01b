package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed *.md
var templates embed.FS

// RenderHoldingsTable renders the HoldingsTable struct to a markdown string.
func RenderHoldingsTable(t *HoldingsTable) string {
	partials := map[string]string{
		"holdings_table_title":  "holdings_table_title.md",
		"holdings_table_rows":   "holdings_table_rows.md",
		"holdings_table_errors": "holdings_table_errors.md",
	}
	return renderTemplate("holdings_table", "holdings_table.md", partials, t)
}

// RenderHoldingsTotals renders the HoldingsTotals struct to a markdown string.
func RenderHoldingsTotals(t *HoldingsTotals) string {
	partials := map[string]string{
		"holdings_totals_line":     "holdings_totals_line.md",
		"holdings_totals_rejected": "holdings_totals_rejected.md",
	}
	return renderTemplate("holdings_totals", "holdings_totals.md", partials, t)
}

// ToHTML converts a markdown report, tables included, to an HTML fragment.
func ToHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var b bytes.Buffer
	if err := md.Convert([]byte(markdown), &b); err != nil {
		return "", fmt.Errorf("cannot convert markdown to html: %w", err)
	}
	return b.String(), nil
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
