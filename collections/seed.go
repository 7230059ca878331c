package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type projectDef struct {
	name          string
	clientName    string
	location      string
	status        string
	progress      int
	budget        string // kept as entered, formatting included
	totalSpent    string
	assignedNames string
	startDate     string
	lat           float64
	lng           float64
}

type inventoryDef struct {
	code     string
	name     string
	category string
	stock    int
	minStock int
	unit     string
	price    float64
}

type quoteItemDef struct {
	sortOrder     int
	code          string
	productName   string
	quantity      float64
	priceSnapshot float64
}

type quoteDef struct {
	clientName  string
	clientEmail string
	sellerName  string
	status      string
	total       string
	items       []quoteItemDef
}

type purchaseDef struct {
	supplierName string
	status       string
	total        string
}

type monthDef struct {
	month     string
	year      int
	sales     string
	purchases string
	profit    string
}

type employeeDef struct {
	firstName     string
	lastName      string
	email         string
	role          string
	occupation    string
	phone         string
	nss           string
	salary        string
	paymentPeriod string
	startDate     string
	vacationDays  int
}

// Seed populates all collections with realistic construction-company
// data. It is safe to call on every startup because it returns early
// if any project records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if projects already exist ──────────────────
	projectsCol, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("seed: could not find projects collection: %w", err)
	}
	existing, err := app.FindAllRecords(projectsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query projects: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: populating collections with sample data...")

	projects := []projectDef{
		{
			name:          "Residencial Los Alamos - Phase II",
			clientName:    "Inmobiliaria Alamos SA",
			location:      "Monterrey, NL",
			status:        "active",
			progress:      65,
			budget:        "$4,500,000",
			totalSpent:    "2,870,500.25",
			assignedNames: "R. Garza, M. Trevino",
			startDate:     "2026-01-12",
			lat:           25.6866,
			lng:           -100.3161,
		},
		{
			name:          "Highway 40 Drainage Works",
			clientName:    "State Infrastructure Board",
			location:      "Saltillo, COAH",
			status:        "active",
			progress:      30,
			budget:        "2,100,000",
			totalSpent:    "580,000",
			assignedNames: "J. Ibarra",
			startDate:     "2026-03-01",
			lat:           25.4383,
			lng:           -100.9737,
		},
		{
			name:          "Centro Logistico Apodaca Warehouse",
			clientName:    "Transportes del Bravo",
			location:      "Apodaca, NL",
			status:        "paused",
			progress:      45,
			budget:        "$1,850,000.00",
			totalSpent:    "$912,300",
			assignedNames: "M. Trevino",
			startDate:     "2025-10-20",
			lat:           25.7817,
			lng:           -100.1888,
		},
		{
			name:          "Municipal Sports Complex Remodel",
			clientName:    "Municipio de San Pedro",
			location:      "San Pedro, NL",
			status:        "finished",
			progress:      100,
			budget:        "980,000",
			totalSpent:    "1,040,250.75", // finished over budget
			assignedNames: "R. Garza",
			startDate:     "2025-05-02",
			lat:           25.6490,
			lng:           -100.4023,
		},
		{
			name:          "Torre Mitras Office Fit-out",
			clientName:    "Grupo Mitras",
			location:      "Monterrey, NL",
			status:        "active",
			progress:      82,
			budget:        "$760,000",
			totalSpent:    "601,150",
			assignedNames: "J. Ibarra, L. Cantu",
			startDate:     "2026-02-15",
			lat:           25.6936,
			lng:           -100.3520,
		},
	}

	inventory := []inventoryDef{
		{code: "CEM-42R", name: "Cement CPC 40kg", category: "Materials", stock: 320, minStock: 100, unit: "bag", price: 215.50},
		{code: "VAR-38", name: "Rebar 3/8\" 12m", category: "Steel", stock: 45, minStock: 60, unit: "pc", price: 168.00},
		{code: "BLK-15", name: "Concrete block 15x20x40", category: "Materials", stock: 1800, minStock: 500, unit: "pc", price: 14.20},
		{code: "PNT-VIN", name: "Vinyl paint 19L white", category: "Finishes", stock: 12, minStock: 12, unit: "bucket", price: 1350.00},
		{code: "ELE-C12", name: "Copper wire cal. 12 (100m)", category: "Electrical", stock: 8, minStock: 15, unit: "roll", price: 1680.00},
		{code: "PLB-PVC4", name: "PVC pipe 4\" sanitary", category: "Plumbing", stock: 96, minStock: 40, unit: "pc", price: 189.90},
	}

	quotes := []quoteDef{
		{
			clientName:  "Inmobiliaria Alamos SA",
			clientEmail: "compras@alamos.mx",
			sellerName:  "L. Cantu",
			status:      "pending",
			total:       "$148,350.00",
			items: []quoteItemDef{
				{sortOrder: 1, code: "CEM-42R", productName: "Cement CPC 40kg", quantity: 400, priceSnapshot: 215.50},
				{sortOrder: 2, code: "VAR-38", productName: "Rebar 3/8\" 12m", quantity: 250, priceSnapshot: 168.00},
				{sortOrder: 3, code: "BLK-15", productName: "Concrete block 15x20x40", quantity: 1500, priceSnapshot: 14.20},
			},
		},
		{
			clientName:  "Grupo Mitras",
			clientEmail: "admin@grupomitras.mx",
			sellerName:  "L. Cantu",
			status:      "approved",
			total:       "52,460",
			items: []quoteItemDef{
				{sortOrder: 1, code: "PNT-VIN", productName: "Vinyl paint 19L white", quantity: 24, priceSnapshot: 1350.00},
				{sortOrder: 2, code: "ELE-C12", productName: "Copper wire cal. 12 (100m)", quantity: 12, priceSnapshot: 1680.00},
			},
		},
		{
			clientName:  "Constructora Rivera",
			clientEmail: "obras@crivera.mx",
			sellerName:  "R. Garza",
			status:      "pending",
			total:       "18,990.00",
			items: []quoteItemDef{
				{sortOrder: 1, code: "PLB-PVC4", productName: "PVC pipe 4\" sanitary", quantity: 100, priceSnapshot: 189.90},
			},
		},
		{
			clientName:  "Municipio de San Pedro",
			clientEmail: "",
			sellerName:  "R. Garza",
			status:      "delivered",
			total:       "$86,200",
			items: []quoteItemDef{
				{sortOrder: 1, code: "BLK-15", productName: "Concrete block 15x20x40", quantity: 2000, priceSnapshot: 14.20},
				{sortOrder: 2, code: "CEM-42R", productName: "Cement CPC 40kg", quantity: 270, priceSnapshot: 215.50},
			},
		},
	}

	purchases := []purchaseDef{
		{supplierName: "Aceros del Norte", status: "pending", total: "$96,400"},
		{supplierName: "Cementos Regiomontanos", status: "received", total: "64,650.00"},
		{supplierName: "Electrica Cumbres", status: "pending", total: "20,160"},
	}

	months := []monthDef{
		{month: "May", year: 2026, sales: "612,000", purchases: "447,800", profit: "164,200"},
		{month: "June", year: 2026, sales: "$548,300.50", purchases: "391,250", profit: ""},
		{month: "July", year: 2026, sales: "701,900", purchases: "$512,640", profit: "189,260"},
		{month: "August", year: 2026, sales: "486,750", purchases: "353,400.25", profit: ""},
	}

	employees := []employeeDef{
		{
			firstName: "Ramiro", lastName: "Garza", email: "rgarza@cdn.mx",
			role: "supervisor", occupation: "Site supervisor", phone: "8112345678",
			nss: "12847563901", salary: "$28,500", paymentPeriod: "monthly", startDate: "2022-04-18",
			vacationDays: 14,
		},
		{
			firstName: "Mariana", lastName: "Trevino", email: "mtrevino@cdn.mx",
			role: "engineer", occupation: "Civil engineer", phone: "8187654321",
			nss: "09384756120", salary: "32,000", paymentPeriod: "monthly", startDate: "2023-01-09",
			vacationDays: 12,
		},
		{
			firstName: "Jorge", lastName: "Ibarra", email: "jibarra@cdn.mx",
			role: "foreman", occupation: "Foreman", phone: "8123456789",
			nss: "11223344556", salary: "4,850", paymentPeriod: "weekly", startDate: "2021-09-01",
			vacationDays: 16,
		},
		{
			firstName: "Lucia", lastName: "Cantu", email: "lcantu@cdn.mx",
			role: "sales", occupation: "Sales executive", phone: "8134567890",
			nss: "66554433221", salary: "9,200", paymentPeriod: "biweekly", startDate: "2024-06-03",
			vacationDays: 6,
		},
	}

	// ── insert ───────────────────────────────────────────────────────

	for _, p := range projects {
		record := core.NewRecord(projectsCol)
		record.Set("name", p.name)
		record.Set("client_name", p.clientName)
		record.Set("location", p.location)
		record.Set("status", p.status)
		record.Set("progress", p.progress)
		record.Set("budget", p.budget)
		record.Set("total_spent", p.totalSpent)
		record.Set("assigned_names", p.assignedNames)
		record.Set("start_date", p.startDate)
		record.Set("lat", p.lat)
		record.Set("lng", p.lng)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: project %q: %w", p.name, err)
		}
	}

	inventoryCol, err := app.FindCollectionByNameOrId("inventory_items")
	if err != nil {
		return fmt.Errorf("seed: could not find inventory_items collection: %w", err)
	}
	for _, it := range inventory {
		record := core.NewRecord(inventoryCol)
		record.Set("code", it.code)
		record.Set("name", it.name)
		record.Set("category", it.category)
		record.Set("stock", it.stock)
		record.Set("min_stock", it.minStock)
		record.Set("unit", it.unit)
		record.Set("price", it.price)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: inventory item %q: %w", it.name, err)
		}
	}

	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("seed: could not find quotes collection: %w", err)
	}
	quoteItemsCol, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		return fmt.Errorf("seed: could not find quote_items collection: %w", err)
	}
	for _, q := range quotes {
		record := core.NewRecord(quotesCol)
		record.Set("client_name", q.clientName)
		record.Set("client_email", q.clientEmail)
		record.Set("seller_name", q.sellerName)
		record.Set("status", q.status)
		record.Set("total", q.total)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: quote for %q: %w", q.clientName, err)
		}
		for _, it := range q.items {
			itemRecord := core.NewRecord(quoteItemsCol)
			itemRecord.Set("quote", record.Id)
			itemRecord.Set("sort_order", it.sortOrder)
			itemRecord.Set("code", it.code)
			itemRecord.Set("product_name", it.productName)
			itemRecord.Set("quantity", it.quantity)
			itemRecord.Set("price_snapshot", it.priceSnapshot)
			if err := app.Save(itemRecord); err != nil {
				return fmt.Errorf("seed: quote item %q: %w", it.productName, err)
			}
		}
	}

	purchasesCol, err := app.FindCollectionByNameOrId("purchase_orders")
	if err != nil {
		return fmt.Errorf("seed: could not find purchase_orders collection: %w", err)
	}
	for _, po := range purchases {
		record := core.NewRecord(purchasesCol)
		record.Set("supplier_name", po.supplierName)
		record.Set("status", po.status)
		record.Set("total", po.total)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: purchase order %q: %w", po.supplierName, err)
		}
	}

	monthsCol, err := app.FindCollectionByNameOrId("monthly_financials")
	if err != nil {
		return fmt.Errorf("seed: could not find monthly_financials collection: %w", err)
	}
	for _, m := range months {
		record := core.NewRecord(monthsCol)
		record.Set("month", m.month)
		record.Set("year", m.year)
		record.Set("sales", m.sales)
		record.Set("purchases", m.purchases)
		record.Set("profit", m.profit)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: month %s %d: %w", m.month, m.year, err)
		}
	}

	employeesCol, err := app.FindCollectionByNameOrId("employees")
	if err != nil {
		return fmt.Errorf("seed: could not find employees collection: %w", err)
	}
	for _, emp := range employees {
		record := core.NewRecord(employeesCol)
		record.Set("first_name", emp.firstName)
		record.Set("last_name", emp.lastName)
		record.Set("email", emp.email)
		record.Set("role", emp.role)
		record.Set("occupation", emp.occupation)
		record.Set("phone", emp.phone)
		record.Set("nss", emp.nss)
		record.Set("salary", emp.salary)
		record.Set("payment_period", emp.paymentPeriod)
		record.Set("start_date", emp.startDate)
		record.Set("vacation_days", emp.vacationDays)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: employee %q: %w", emp.firstName, err)
		}
	}

	log.Println("seed: done.")
	return nil
}
