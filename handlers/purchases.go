package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/services"
)

// HandlePurchaseList serves all purchase orders as JSON.
func HandlePurchaseList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		snap, err := LoadSnapshot(app)
		if err != nil {
			log.Printf("purchases: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load purchase orders")
		}
		return e.JSON(http.StatusOK, snap.Purchases)
	}
}

// HandlePurchaseSave creates a purchase order from form data.
func HandlePurchaseSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		supplier := strings.TrimSpace(e.Request.FormValue("supplier_name"))
		if supplier == "" {
			return ErrorToast(e, http.StatusBadRequest, "Supplier name is required")
		}

		col, err := app.FindCollectionByNameOrId("purchase_orders")
		if err != nil {
			log.Printf("purchases: could not find purchase_orders collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("supplier_name", supplier)
		record.Set("status", services.PurchaseStatusPending)
		record.Set("total", strings.TrimSpace(e.Request.FormValue("total")))

		if err := app.Save(record); err != nil {
			log.Printf("purchases: could not save purchase order: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Purchase order created")
		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}

// HandlePurchaseReceive marks a purchase order as received. Received
// is terminal; marking an already received order is rejected.
func HandlePurchaseReceive(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		orderID := e.Request.PathValue("id")
		record, err := app.FindRecordById("purchase_orders", orderID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Purchase order not found")
		}

		if record.GetString("status") == services.PurchaseStatusReceived {
			return ErrorToast(e, http.StatusBadRequest, "Purchase order already received")
		}

		record.Set("status", services.PurchaseStatusReceived)
		if err := app.Save(record); err != nil {
			log.Printf("purchases: could not mark %s received: %v", orderID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Purchase order received")
		return e.JSON(http.StatusOK, map[string]string{"status": services.PurchaseStatusReceived})
	}
}

// HandlePurchaseDelete removes a purchase order.
func HandlePurchaseDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		orderID := e.Request.PathValue("id")
		record, err := app.FindRecordById("purchase_orders", orderID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Purchase order not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("purchases: could not delete purchase order %s: %v", orderID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Purchase order deleted")
		return e.NoContent(http.StatusNoContent)
	}
}
