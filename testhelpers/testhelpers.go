// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProject creates a project record. Budget figures are passed
// as strings on purpose: the upstream data carries formatted values and
// the engine must cope.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, name, status string, progress int, budget, totalSpent string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("client_name", "Test Client")
	record.Set("location", "Monterrey, NL")
	record.Set("status", status)
	record.Set("progress", progress)
	record.Set("budget", budget)
	record.Set("total_spent", totalSpent)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// CreateTestInventoryItem creates an inventory item record.
func CreateTestInventoryItem(t *testing.T, app *pocketbase.PocketBase, name string, stock, minStock int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("inventory_items")
	if err != nil {
		t.Fatalf("failed to find inventory_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("code", "TST-001")
	record.Set("name", name)
	record.Set("category", "Materials")
	record.Set("stock", stock)
	record.Set("min_stock", minStock)
	record.Set("unit", "pc")
	record.Set("price", 99.50)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test inventory item: %v", err)
	}

	return record
}

// CreateTestQuote creates a quote record with the given status and total.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, clientName, status, total string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("client_name", clientName)
	record.Set("seller_name", "Test Seller")
	record.Set("status", status)
	record.Set("total", total)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteItem creates a line item under a quote.
func CreateTestQuoteItem(t *testing.T, app *pocketbase.PocketBase, quoteID, productName string, quantity, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		t.Fatalf("failed to find quote_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("code", "TST-001")
	record.Set("product_name", productName)
	record.Set("quantity", quantity)
	record.Set("price_snapshot", price)
	record.Set("sort_order", 1)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote item: %v", err)
	}

	return record
}

// CreateTestPurchaseOrder creates a purchase order record.
func CreateTestPurchaseOrder(t *testing.T, app *pocketbase.PocketBase, supplierName, status, total string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("purchase_orders")
	if err != nil {
		t.Fatalf("failed to find purchase_orders collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("supplier_name", supplierName)
	record.Set("status", status)
	record.Set("total", total)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test purchase order: %v", err)
	}

	return record
}

// CreateTestMonth creates a monthly_financials record. Pass profit as
// "" to exercise the derived Sales - Purchases path.
func CreateTestMonth(t *testing.T, app *pocketbase.PocketBase, month string, year int, sales, purchases, profit string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("monthly_financials")
	if err != nil {
		t.Fatalf("failed to find monthly_financials collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("month", month)
	record.Set("year", year)
	record.Set("sales", sales)
	record.Set("purchases", purchases)
	record.Set("profit", profit)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test month: %v", err)
	}

	return record
}

// CreateTestEmployee creates an employee record.
func CreateTestEmployee(t *testing.T, app *pocketbase.PocketBase, firstName, lastName, salary string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("employees")
	if err != nil {
		t.Fatalf("failed to find employees collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("first_name", firstName)
	record.Set("last_name", lastName)
	record.Set("email", strings.ToLower(firstName)+"@test.mx")
	record.Set("role", "worker")
	record.Set("occupation", "Mason")
	record.Set("phone", "8100000000")
	record.Set("nss", "00011122233")
	record.Set("salary", salary)
	record.Set("payment_period", "weekly")
	record.Set("start_date", "2024-01-15")
	record.Set("vacation_days", 12)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test employee: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
