package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/services"
)

// LoadSnapshot reads every collection the aggregation engine consumes
// into one services.Snapshot. Budget-style fields stay raw strings;
// sanitization is the engine's job.
func LoadSnapshot(app *pocketbase.PocketBase) (services.Snapshot, error) {
	var snap services.Snapshot

	projects, err := findAll(app, "projects")
	if err != nil {
		return snap, err
	}
	for _, r := range projects {
		snap.Projects = append(snap.Projects, services.Project{
			ID:            r.Id,
			Name:          r.GetString("name"),
			Location:      r.GetString("location"),
			Status:        r.GetString("status"),
			Progress:      int(r.GetFloat("progress")),
			Budget:        r.GetString("budget"),
			TotalSpent:    r.GetString("total_spent"),
			ClientName:    r.GetString("client_name"),
			AssignedNames: r.GetString("assigned_names"),
			StartDate:     r.GetString("start_date"),
			Lat:           r.GetFloat("lat"),
			Lng:           r.GetFloat("lng"),
		})
	}

	items, err := findAll(app, "inventory_items")
	if err != nil {
		return snap, err
	}
	for _, r := range items {
		snap.Inventory = append(snap.Inventory, services.InventoryItem{
			ID:       r.Id,
			Code:     r.GetString("code"),
			Name:     r.GetString("name"),
			Category: r.GetString("category"),
			Stock:    int(r.GetFloat("stock")),
			MinStock: int(r.GetFloat("min_stock")),
			Unit:     r.GetString("unit"),
			Price:    r.GetFloat("price"),
		})
	}

	quotes, err := findAll(app, "quotes")
	if err != nil {
		return snap, err
	}
	for _, r := range quotes {
		snap.Quotes = append(snap.Quotes, quoteFromRecord(r))
	}

	orders, err := findAll(app, "purchase_orders")
	if err != nil {
		return snap, err
	}
	for _, r := range orders {
		snap.Purchases = append(snap.Purchases, services.PurchaseOrder{
			ID:           r.Id,
			SupplierName: r.GetString("supplier_name"),
			Status:       r.GetString("status"),
			Total:        r.GetString("total"),
			CreatedDate:  createdDate(r),
		})
	}

	months, err := findAll(app, "monthly_financials")
	if err != nil {
		return snap, err
	}
	for _, r := range months {
		profit := r.GetString("profit")
		snap.Buckets = append(snap.Buckets, services.MonthlyBucket{
			Month:     r.GetString("month"),
			Year:      int(r.GetFloat("year")),
			Sales:     r.GetString("sales"),
			Purchases: r.GetString("purchases"),
			Profit:    profit,
			HasProfit: profit != "",
		})
	}

	employees, err := findAll(app, "employees")
	if err != nil {
		return snap, err
	}
	for _, r := range employees {
		snap.Employees = append(snap.Employees, employeeFromRecord(r))
	}

	return snap, nil
}

// LoadQuote reads one quote and its line items.
func LoadQuote(app *pocketbase.PocketBase, quoteID string) (services.Quote, error) {
	record, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return services.Quote{}, fmt.Errorf("quote not found: %w", err)
	}
	q := quoteFromRecord(record)

	itemsCol, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		return services.Quote{}, fmt.Errorf("collection not found: %w", err)
	}
	items, err := app.FindRecordsByFilter(itemsCol, "quote = {:quoteId}", "sort_order", 0, 0, map[string]any{"quoteId": quoteID})
	if err != nil {
		items = nil
	}
	for _, it := range items {
		q.Items = append(q.Items, services.QuoteItem{
			Code:          it.GetString("code"),
			ProductName:   it.GetString("product_name"),
			Quantity:      it.GetFloat("quantity"),
			PriceSnapshot: it.GetFloat("price_snapshot"),
		})
	}
	return q, nil
}

// LoadEmployee reads one employee record.
func LoadEmployee(app *pocketbase.PocketBase, employeeID string) (services.Employee, error) {
	record, err := app.FindRecordById("employees", employeeID)
	if err != nil {
		return services.Employee{}, fmt.Errorf("employee not found: %w", err)
	}
	return employeeFromRecord(record), nil
}

func quoteFromRecord(r *core.Record) services.Quote {
	return services.Quote{
		ID:          r.Id,
		ClientName:  r.GetString("client_name"),
		ClientEmail: r.GetString("client_email"),
		SellerName:  r.GetString("seller_name"),
		ProjectID:   r.GetString("project"),
		Status:      r.GetString("status"),
		Total:       r.GetString("total"),
		CreatedDate: createdDate(r),
	}
}

func employeeFromRecord(r *core.Record) services.Employee {
	return services.Employee{
		ID:            r.Id,
		FirstName:     r.GetString("first_name"),
		LastName:      r.GetString("last_name"),
		Email:         r.GetString("email"),
		Role:          r.GetString("role"),
		Occupation:    r.GetString("occupation"),
		Phone:         r.GetString("phone"),
		NSS:           r.GetString("nss"),
		Salary:        r.GetString("salary"),
		PaymentPeriod: r.GetString("payment_period"),
		StartDate:     r.GetString("start_date"),
		VacationDays:  int(r.GetFloat("vacation_days")),
	}
}

func createdDate(r *core.Record) string {
	if dt := r.GetDateTime("created"); !dt.IsZero() {
		return dt.Time().Format("02/01/2006")
	}
	return ""
}

func findAll(app *pocketbase.PocketBase, colName string) ([]*core.Record, error) {
	col, err := app.FindCollectionByNameOrId(colName)
	if err != nil {
		return nil, fmt.Errorf("collection %s not found: %w", colName, err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", colName, err)
	}
	return records, nil
}
