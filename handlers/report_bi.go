package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/services"
)

// HandleBIReportPDF generates and downloads the monthly management
// report. The period comes from ?month=&year= or the report-period
// cookie; chart snapshots come from whatever the dashboard posted.
func HandleBIReportPDF(app *pocketbase.PocketBase, charts services.ChartSource) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		period := GetReportPeriod(e.Request)

		snap, err := LoadSnapshot(app)
		if err != nil {
			log.Printf("report_bi: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load report data")
		}

		branding := loadBranding(app)
		data := services.BIReportData{
			Metrics:     services.BuildMetrics(snap, period.MonthName, period.Year),
			CompanyName: branding.CompanyName,
			FooterLabel: branding.FooterLabel,
			GeneratedAt: time.Now(),
			Charts:      charts,
		}

		pdfBytes, err := services.GenerateBIReport(data)
		if err != nil {
			log.Printf("report_bi: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate management report")
		}

		filename := services.BIReportFilename(period.MonthName, period.Year)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
