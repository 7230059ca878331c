// Package templates holds the server-rendered views. Components are
// plain templ components built in code; the dashboard is a shell that
// fetches its numbers from /api/dashboard/metrics and renders the
// charts client-side.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// DashboardData parameterizes the dashboard shell.
type DashboardData struct {
	CompanyName string
	MonthName   string
	Year        int
}

// chartSections are rendered as empty divs the client-side charts mount
// into. Their ids double as the chart snapshot identifiers.
var chartSections = []struct {
	ID    string
	Title string
}{
	{"financial-evolution", "Financial Evolution"},
	{"status-breakdown", "Project Status"},
	{"top-progress", "Top Progress"},
}

// DashboardPage renders the dashboard shell.
func DashboardPage(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">"); err != nil {
			return err
		}
		title := fmt.Sprintf("<title>%s - Dashboard</title>", html.EscapeString(data.CompanyName))
		if _, err := io.WriteString(w, title); err != nil {
			return err
		}
		if _, err := io.WriteString(w,
			`<script src="/static/htmx.min.js"></script>`+
				`<link rel="stylesheet" href="/static/app.css">`+
				`</head><body data-metrics-url="/api/dashboard/metrics">`); err != nil {
			return err
		}

		header := fmt.Sprintf(
			`<header id="dashboard-header"><h1>%s</h1><p id="report-period">%s %d</p>`+
				`<a id="bi-report-link" href="/reports/bi/pdf">Download management report</a></header>`,
			html.EscapeString(data.CompanyName),
			html.EscapeString(data.MonthName),
			data.Year,
		)
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main id="dashboard"><section id="kpi-cards"></section>`); err != nil {
			return err
		}
		for _, s := range chartSections {
			section := fmt.Sprintf(
				`<section class="chart-section"><h2>%s</h2><div id="%s" class="chart"></div></section>`,
				html.EscapeString(s.Title), s.ID,
			)
			if _, err := io.WriteString(w, section); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<section id="low-stock-alerts"></section></main>`); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<script src="/static/dashboard.js"></script></body></html>`)
		return err
	})
}
