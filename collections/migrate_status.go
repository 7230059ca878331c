package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// legacyStatus maps the Spanish status values carried over from the
// previous system to the canonical English vocabulary, per collection.
var legacyStatus = map[string]map[string]string{
	"projects": {
		"activo":     "active",
		"pausado":    "paused",
		"terminado":  "finished",
		"finalizado": "finished",
	},
	"quotes": {
		"pendiente": "pending",
		"aprobada":  "approved",
		"en_camino": "en_route",
		"entregada": "delivered",
		"cancelada": "cancelled",
	},
	"purchase_orders": {
		"pendiente": "pending",
		"recibida":  "received",
	},
}

// MigrateLegacyStatuses rewrites any record still carrying a legacy
// Spanish status value. Safe to call on every startup -- records
// already normalized are left alone.
func MigrateLegacyStatuses(app *pocketbase.PocketBase) error {
	for colName, mapping := range legacyStatus {
		col, err := app.FindCollectionByNameOrId(colName)
		if err != nil {
			return fmt.Errorf("migrate_status: could not find %s collection: %w", colName, err)
		}

		migrated := 0
		for legacy, canonical := range mapping {
			records, err := app.FindRecordsByFilter(
				col,
				"status = {:status}",
				"",
				0, 0,
				map[string]any{"status": legacy},
			)
			if err != nil {
				return fmt.Errorf("migrate_status: could not query %s: %w", colName, err)
			}

			for _, r := range records {
				r.Set("status", canonical)
				if err := app.Save(r); err != nil {
					log.Printf("migrate_status: failed to normalize %s %s (%q -> %q): %v\n",
						colName, r.Id, legacy, canonical, err)
					continue
				}
				migrated++
			}
		}

		if migrated > 0 {
			log.Printf("migrate_status: normalized %d %s record(s)\n", migrated, colName)
		}
	}
	return nil
}

// AllowLegacyStatuses widens a collection's status select to accept
// the legacy values, so databases restored from the previous system
// can load before MigrateLegacyStatuses normalizes them.
func AllowLegacyStatuses(app *pocketbase.PocketBase, colName string) error {
	col, err := app.FindCollectionByNameOrId(colName)
	if err != nil {
		return err
	}
	field, ok := col.Fields.GetByName("status").(*core.SelectField)
	if !ok {
		return fmt.Errorf("migrate_status: %s has no status select field", colName)
	}
	for legacy := range legacyStatus[colName] {
		field.Values = append(field.Values, legacy)
	}
	return app.Save(col)
}
