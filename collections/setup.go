package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures every collection the back
// office needs: projects, inventory_items, quotes, quote_items,
// purchase_orders, monthly_financials, employees and report_settings.
func Setup(app *pocketbase.PocketBase) {
	projects := ensureCollection(app, "projects", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "location", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"active", "paused", "finished"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "progress", Required: false})
		// Historically stored as formatted strings ("1,250,000"), so
		// budget figures stay TEXT and are sanitized on read.
		c.Fields.Add(&core.TextField{Name: "budget", Required: false})
		c.Fields.Add(&core.TextField{Name: "total_spent", Required: false})
		c.Fields.Add(&core.TextField{Name: "assigned_names", Required: false})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: false})
		c.Fields.Add(&core.NumberField{Name: "lat", Required: false})
		c.Fields.Add(&core.NumberField{Name: "lng", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "inventory_items", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "code", Required: false})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.NumberField{Name: "stock", Required: false})
		c.Fields.Add(&core.NumberField{Name: "min_stock", Required: false})
		c.Fields.Add(&core.TextField{Name: "unit", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "client_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_email", Required: false})
		c.Fields.Add(&core.TextField{Name: "seller_name", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "project",
			Required:     false,
			CollectionId: projects.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"pending", "approved", "en_route", "delivered", "cancelled"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "total", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "code", Required: false})
		c.Fields.Add(&core.TextField{Name: "product_name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.NumberField{Name: "price_snapshot", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
	})

	ensureCollection(app, "purchase_orders", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "supplier_name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"pending", "received"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "total", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "monthly_financials", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "month", Required: true})
		c.Fields.Add(&core.NumberField{Name: "year", Required: true})
		c.Fields.Add(&core.TextField{Name: "sales", Required: false})
		c.Fields.Add(&core.TextField{Name: "purchases", Required: false})
		c.Fields.Add(&core.TextField{Name: "profit", Required: false})
	})

	ensureCollection(app, "employees", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "first_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "last_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "role", Required: false})
		c.Fields.Add(&core.TextField{Name: "occupation", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "nss", Required: false})
		c.Fields.Add(&core.TextField{Name: "salary", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "payment_period",
			Required:  false,
			Values:    []string{"weekly", "biweekly", "monthly"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: false})
		// Remaining vacation balance in days, consumed by approved requests.
		c.Fields.Add(&core.NumberField{Name: "vacation_days", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "report_settings", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "company_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "footer_label", Required: false})
		c.Fields.Add(&core.TextField{Name: "logo_path", Required: false})
		c.Fields.Add(&core.TextField{Name: "quote_terms", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
