package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/services"
)

// HandleVacationRequestPDF generates and downloads one vacation
// request form. The requested days and period come from query params;
// a request exceeding the employee's balance is rejected before any
// document is produced.
func HandleVacationRequestPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		employeeID := e.Request.PathValue("id")
		if employeeID == "" {
			return e.String(http.StatusBadRequest, "Missing employee ID")
		}

		employee, err := LoadEmployee(app, employeeID)
		if err != nil {
			log.Printf("vacations: %v", err)
			return e.String(http.StatusNotFound, "Employee not found")
		}

		q := e.Request.URL.Query()
		days, err := strconv.Atoi(strings.TrimSpace(q.Get("days")))
		if err != nil || days < 1 {
			return e.String(http.StatusBadRequest, "Invalid vacation request")
		}
		if days > employee.VacationDays {
			return e.String(http.StatusBadRequest, "Not enough vacation days available")
		}

		branding := loadBranding(app)
		data := services.VacationRequestData{
			Employee:    employee,
			CompanyName: branding.CompanyName,
			StartDate:   strings.TrimSpace(q.Get("start")),
			EndDate:     strings.TrimSpace(q.Get("end")),
			Days:        days,
			GeneratedAt: time.Now(),
		}

		pdfBytes, err := services.GenerateVacationPDF(data)
		if err != nil {
			log.Printf("vacations: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := services.VacationFilename(employee)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleVacationProcess deducts approved vacation days from an
// employee's balance. The balance never goes negative.
func HandleVacationProcess(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		employeeID := e.Request.PathValue("id")
		record, err := app.FindRecordById("employees", employeeID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Employee not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		days, err := strconv.Atoi(strings.TrimSpace(e.Request.FormValue("days")))
		if err != nil || days < 1 {
			return ErrorToast(e, http.StatusBadRequest, "Invalid vacation request")
		}

		balance := int(record.GetFloat("vacation_days"))
		if days > balance {
			return ErrorToast(e, http.StatusBadRequest, "Not enough vacation days available")
		}

		remaining := balance - days
		record.Set("vacation_days", remaining)
		if err := app.Save(record); err != nil {
			log.Printf("vacations: could not update balance for %s: %v", employeeID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Vacation request processed")
		return e.JSON(http.StatusOK, map[string]int{"vacation_days": remaining})
	}
}
