package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/services"
)

var QuoteStatusOptions = []string{
	services.QuoteStatusPending,
	services.QuoteStatusApproved,
	services.QuoteStatusEnRoute,
	services.QuoteStatusDelivered,
	services.QuoteStatusCancelled,
}

// quoteTransitions is the allowed status pipeline. Cancellation is
// reachable until the quote is delivered.
var quoteTransitions = map[string][]string{
	services.QuoteStatusPending:   {services.QuoteStatusApproved, services.QuoteStatusCancelled},
	services.QuoteStatusApproved:  {services.QuoteStatusEnRoute, services.QuoteStatusCancelled},
	services.QuoteStatusEnRoute:   {services.QuoteStatusDelivered, services.QuoteStatusCancelled},
	services.QuoteStatusDelivered: {},
	services.QuoteStatusCancelled: {},
}

// HandleQuoteList serves all quotes as JSON.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		snap, err := LoadSnapshot(app)
		if err != nil {
			log.Printf("quotes: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotes")
		}
		return e.JSON(http.StatusOK, snap.Quotes)
	}
}

// HandleQuoteSave creates a quote (without items) from form data.
// Items are added through the quote_items endpoint.
func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		clientName := strings.TrimSpace(e.Request.FormValue("client_name"))
		if clientName == "" {
			return ErrorToast(e, http.StatusBadRequest, "Client name is required")
		}

		col, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quotes: could not find quotes collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("client_name", clientName)
		record.Set("client_email", strings.TrimSpace(e.Request.FormValue("client_email")))
		record.Set("seller_name", strings.TrimSpace(e.Request.FormValue("seller_name")))
		record.Set("project", strings.TrimSpace(e.Request.FormValue("project")))
		record.Set("status", services.QuoteStatusPending)
		record.Set("total", strings.TrimSpace(e.Request.FormValue("total")))

		if err := app.Save(record); err != nil {
			log.Printf("quotes: could not save quote: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quote created")
		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}

// HandleQuoteStatus moves a quote along the status pipeline.
func HandleQuoteStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		record, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		next := strings.TrimSpace(e.Request.FormValue("status"))
		if !validOption(next, QuoteStatusOptions) {
			return ErrorToast(e, http.StatusBadRequest, "Invalid quote status")
		}

		current := record.GetString("status")
		if !validOption(next, quoteTransitions[current]) {
			return ErrorToast(e, http.StatusBadRequest, "Invalid status transition")
		}

		record.Set("status", next)
		if err := app.Save(record); err != nil {
			log.Printf("quotes: could not update status for %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quote status updated")
		return e.JSON(http.StatusOK, map[string]string{"status": next})
	}
}

// HandleQuoteDelete removes a quote; its line items cascade.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		record, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quotes: could not delete quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quote deleted")
		return e.NoContent(http.StatusNoContent)
	}
}
