package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/services"
)

var ProjectStatusOptions = []string{
	services.ProjectStatusActive,
	services.ProjectStatusPaused,
	services.ProjectStatusFinished,
}

// HandleProjectList serves all projects as JSON.
func HandleProjectList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		snap, err := LoadSnapshot(app)
		if err != nil {
			log.Printf("projects: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load projects")
		}
		return e.JSON(http.StatusOK, snap.Projects)
	}
}

// HandleProjectSave creates a project from form data. Budget figures
// are stored exactly as entered; sanitization happens on read.
func HandleProjectSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Project name is required")
		}

		status := strings.TrimSpace(e.Request.FormValue("status"))
		if !validOption(status, ProjectStatusOptions) {
			status = services.ProjectStatusActive
		}

		col, err := app.FindCollectionByNameOrId("projects")
		if err != nil {
			log.Printf("projects: could not find projects collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("name", name)
		record.Set("client_name", strings.TrimSpace(e.Request.FormValue("client_name")))
		record.Set("location", strings.TrimSpace(e.Request.FormValue("location")))
		record.Set("status", status)
		record.Set("progress", clampProgress(e.Request.FormValue("progress")))
		record.Set("budget", strings.TrimSpace(e.Request.FormValue("budget")))
		record.Set("total_spent", strings.TrimSpace(e.Request.FormValue("total_spent")))
		record.Set("assigned_names", strings.TrimSpace(e.Request.FormValue("assigned_names")))
		record.Set("start_date", strings.TrimSpace(e.Request.FormValue("start_date")))

		if err := app.Save(record); err != nil {
			log.Printf("projects: could not save project: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Project created successfully")
		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}

// HandleProjectUpdate updates the fields present in the form.
func HandleProjectUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		record, err := app.FindRecordById("projects", projectID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Project not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		for _, field := range []string{"name", "client_name", "location", "budget", "total_spent", "assigned_names", "start_date"} {
			if _, ok := e.Request.Form[field]; ok {
				record.Set(field, strings.TrimSpace(e.Request.FormValue(field)))
			}
		}
		if _, ok := e.Request.Form["progress"]; ok {
			record.Set("progress", clampProgress(e.Request.FormValue("progress")))
		}
		if status, ok := e.Request.Form["status"]; ok && len(status) > 0 {
			if !validOption(status[0], ProjectStatusOptions) {
				return ErrorToast(e, http.StatusBadRequest, "Invalid project status")
			}
			record.Set("status", status[0])
		}

		if err := app.Save(record); err != nil {
			log.Printf("projects: could not update project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Project updated successfully")
		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}

// HandleProjectDelete removes a project.
func HandleProjectDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		record, err := app.FindRecordById("projects", projectID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Project not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("projects: could not delete project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Project deleted")
		return e.NoContent(http.StatusNoContent)
	}
}

func validOption(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}

// clampProgress parses a form progress value into [0, 100].
func clampProgress(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
