package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/services"
)

func validReportType(t string) bool {
	switch t {
	case services.ReportProjects, services.ReportInventory, services.ReportPersonnel:
		return true
	}
	return false
}

// buildListReportData loads the slice behind one list report type and
// bundles it with branding.
func buildListReportData(app *pocketbase.PocketBase, reportType string) (services.ListReportData, error) {
	snap, err := LoadSnapshot(app)
	if err != nil {
		return services.ListReportData{}, err
	}

	branding := loadBranding(app)
	return services.ListReportData{
		ReportType:  reportType,
		Projects:    snap.Projects,
		Inventory:   snap.Inventory,
		Employees:   snap.Employees,
		CompanyName: branding.CompanyName,
		Logo:        loadLogo(branding.LogoPath),
		GeneratedAt: time.Now(),
	}, nil
}

// HandleListReportExcel generates and downloads one list report as a
// spreadsheet. An empty collection is rejected with a toast before any
// file bytes are produced.
func HandleListReportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		reportType := e.Request.PathValue("type")
		if !validReportType(reportType) {
			return ErrorToast(e, http.StatusBadRequest, "Unknown report type")
		}

		data, err := buildListReportData(app, reportType)
		if err != nil {
			log.Printf("report_excel: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load report data")
		}

		xlsxBytes, err := services.GenerateListExcel(data)
		if errors.Is(err, services.ErrNothingToExport) {
			return ErrorToast(e, http.StatusBadRequest, "There is no data to export")
		}
		if err != nil {
			log.Printf("report_excel: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := services.ListReportFilename(reportType, "xlsx", data.GeneratedAt)
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleListReportPDF generates and downloads one list report as a
// landscape PDF table. Same layouts as the spreadsheet export.
func HandleListReportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		reportType := e.Request.PathValue("type")
		if !validReportType(reportType) {
			return ErrorToast(e, http.StatusBadRequest, "Unknown report type")
		}

		data, err := buildListReportData(app, reportType)
		if err != nil {
			log.Printf("report_pdf: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load report data")
		}

		pdfBytes, err := services.GenerateListPDF(data)
		if errors.Is(err, services.ErrNothingToExport) {
			return ErrorToast(e, http.StatusBadRequest, "There is no data to export")
		}
		if err != nil {
			log.Printf("report_pdf: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := services.ListReportFilename(reportType, "pdf", data.GeneratedAt)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
