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

// HandlePayslipPDF generates and downloads one payroll receipt.
func HandlePayslipPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		employeeID := e.Request.PathValue("id")
		if employeeID == "" {
			return e.String(http.StatusBadRequest, "Missing employee ID")
		}

		employee, err := LoadEmployee(app, employeeID)
		if err != nil {
			log.Printf("payroll: %v", err)
			return e.String(http.StatusNotFound, "Employee not found")
		}

		period := GetReportPeriod(e.Request)
		branding := loadBranding(app)
		data := services.PayslipData{
			Employee:    employee,
			CompanyName: branding.CompanyName,
			PeriodLabel: fmt.Sprintf("%s %d", period.MonthName, period.Year),
			GeneratedAt: time.Now(),
		}

		pdfBytes, err := services.GeneratePayslipPDF(data)
		if err != nil {
			log.Printf("payroll: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := services.PayslipFilename(employee)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
