package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleInventoryList serves all inventory items as JSON.
func HandleInventoryList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		snap, err := LoadSnapshot(app)
		if err != nil {
			log.Printf("inventory: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load inventory")
		}
		return e.JSON(http.StatusOK, snap.Inventory)
	}
}

// HandleInventorySave creates an inventory item from form data.
func HandleInventorySave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Item name is required")
		}

		col, err := app.FindCollectionByNameOrId("inventory_items")
		if err != nil {
			log.Printf("inventory: could not find inventory_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("code", strings.TrimSpace(e.Request.FormValue("code")))
		record.Set("name", name)
		record.Set("category", strings.TrimSpace(e.Request.FormValue("category")))
		record.Set("stock", parseNonNegativeInt(e.Request.FormValue("stock")))
		record.Set("min_stock", parseNonNegativeInt(e.Request.FormValue("min_stock")))
		record.Set("unit", strings.TrimSpace(e.Request.FormValue("unit")))
		record.Set("price", parseNonNegativeFloat(e.Request.FormValue("price")))

		if err := app.Save(record); err != nil {
			log.Printf("inventory: could not save item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Inventory item created")
		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}

// HandleInventoryAdjustStock applies a signed stock delta to one item.
// Stock never goes below zero.
func HandleInventoryAdjustStock(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		record, err := app.FindRecordById("inventory_items", itemID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Inventory item not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		delta, err := strconv.Atoi(strings.TrimSpace(e.Request.FormValue("delta")))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid stock adjustment")
		}

		stock := int(record.GetFloat("stock")) + delta
		if stock < 0 {
			return ErrorToast(e, http.StatusBadRequest, "Stock cannot go below zero")
		}
		record.Set("stock", stock)

		if err := app.Save(record); err != nil {
			log.Printf("inventory: could not adjust stock for %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Stock updated")
		return e.JSON(http.StatusOK, map[string]int{"stock": stock})
	}
}

// HandleInventoryDelete removes an inventory item.
func HandleInventoryDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		record, err := app.FindRecordById("inventory_items", itemID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Inventory item not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("inventory: could not delete item %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Inventory item deleted")
		return e.NoContent(http.StatusNoContent)
	}
}

func parseNonNegativeInt(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseNonNegativeFloat(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
