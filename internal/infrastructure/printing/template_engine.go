package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TemplateEngine renders HTML report templates with business data. It
// uses Go's html/template package with custom formatting functions.
type TemplateEngine struct {
	funcMap template.FuncMap
}

// NewTemplateEngine creates a new template engine with the default
// function map.
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{}

	e.funcMap = template.FuncMap{
		// Money formatting
		"formatUSD": formatUSD,
		"formatBs":  formatBs,

		// Date formatting
		"formatDate":     formatDate,
		"formatDateTime": formatDateTime,

		// String utilities
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"title": titleCase,
		"trim":  strings.TrimSpace,
	}

	return e
}

// Render executes the named template source against data
func (e *TemplateEngine) Render(name, source string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(e.funcMap).Parse(source)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

func formatUSD(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func formatBs(d decimal.Decimal) string {
	return "Bs. " + d.StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func formatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

func titleCase(s string) string {
	return cases.Title(language.Spanish).String(s)
}
