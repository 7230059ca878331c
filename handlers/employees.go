package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

var PaymentPeriodOptions = []string{"weekly", "biweekly", "monthly"}

// HandleEmployeeList serves all employees as JSON.
func HandleEmployeeList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		snap, err := LoadSnapshot(app)
		if err != nil {
			log.Printf("employees: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load employees")
		}
		return e.JSON(http.StatusOK, snap.Employees)
	}
}

// HandleEmployeeSave creates an employee from form data. Salary is
// stored exactly as entered; sanitization happens on read.
func HandleEmployeeSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		firstName := strings.TrimSpace(e.Request.FormValue("first_name"))
		if firstName == "" {
			return ErrorToast(e, http.StatusBadRequest, "First name is required")
		}

		period := strings.TrimSpace(e.Request.FormValue("payment_period"))
		if period != "" && !validOption(period, PaymentPeriodOptions) {
			return ErrorToast(e, http.StatusBadRequest, "Invalid payment period")
		}

		col, err := app.FindCollectionByNameOrId("employees")
		if err != nil {
			log.Printf("employees: could not find employees collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("first_name", firstName)
		record.Set("last_name", strings.TrimSpace(e.Request.FormValue("last_name")))
		record.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
		record.Set("role", strings.TrimSpace(e.Request.FormValue("role")))
		record.Set("occupation", strings.TrimSpace(e.Request.FormValue("occupation")))
		record.Set("phone", strings.TrimSpace(e.Request.FormValue("phone")))
		record.Set("nss", strings.TrimSpace(e.Request.FormValue("nss")))
		record.Set("salary", strings.TrimSpace(e.Request.FormValue("salary")))
		record.Set("payment_period", period)
		record.Set("start_date", strings.TrimSpace(e.Request.FormValue("start_date")))

		if err := app.Save(record); err != nil {
			log.Printf("employees: could not save employee: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Employee created")
		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}

// HandleEmployeeDelete removes an employee.
func HandleEmployeeDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		employeeID := e.Request.PathValue("id")
		record, err := app.FindRecordById("employees", employeeID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Employee not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("employees: could not delete employee %s: %v", employeeID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Employee deleted")
		return e.NoContent(http.StatusNoContent)
	}
}
