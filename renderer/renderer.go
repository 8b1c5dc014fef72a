// Package renderer turns fund records and projections into markdown
// reports. Layout lives in embedded templates; the data side stays in
// report types built from the core entities.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates
var templatesRoot embed.FS

// templates is the embedded template folder.
var templates, _ = fs.Sub(templatesRoot, "templates")

// funcs are the formatting helpers available to every template.
var funcs = template.FuncMap{
	"money":   TWD,
	"percent": Percent,
	"month":   MonthName,
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
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

// RenderFunds renders the fund table report to markdown.
func RenderFunds(r *FundsReport) string {
	partials := map[string]string{
		"funds_rows": "funds_rows.md",
	}
	return renderTemplate("funds", "funds.md", partials, r)
}

// RenderProjection renders the 12-month portfolio projection to markdown.
func RenderProjection(r *ProjectionReport) string {
	partials := map[string]string{
		"projection_calendar": "projection_calendar.md",
		"projection_curve":    "projection_curve.md",
	}
	return renderTemplate("projection", "projection.md", partials, r)
}
