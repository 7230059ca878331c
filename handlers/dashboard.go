package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/services"
	"geoportal/templates"
)

// HandleDashboard renders the dashboard shell. The numbers come from
// the metrics endpoint so the page and the reports share one engine.
func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		period := GetReportPeriod(e.Request)
		branding := loadBranding(app)

		data := templates.DashboardData{
			CompanyName: branding.CompanyName,
			MonthName:   period.MonthName,
			Year:        period.Year,
		}
		component := templates.DashboardPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleDashboardMetrics serves the full KPI set as JSON for the
// selected period.
func HandleDashboardMetrics(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		period := GetReportPeriod(e.Request)

		snap, err := LoadSnapshot(app)
		if err != nil {
			log.Printf("dashboard: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load dashboard data")
		}

		metrics := services.BuildMetrics(snap, period.MonthName, period.Year)
		return e.JSON(http.StatusOK, metrics)
	}
}
