package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Default branding applied when no report_settings record exists yet.
const (
	DefaultCompanyName = "Constructora del Norte"
	DefaultFooterLabel = "Internal management report"
	DefaultLogoPath    = "./static/logo.png"
	DefaultQuoteTerms  = "Prices valid for 15 days. Delivery times subject to stock availability. " +
		"Payment due on delivery unless agreed otherwise in writing."
)

// MigrateDefaultReportSettings ensures exactly one report_settings
// record exists, creating it with defaults when missing. Safe to call
// on every startup.
func MigrateDefaultReportSettings(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("report_settings")
	if err != nil {
		return fmt.Errorf("migrate_report_settings: could not find report_settings collection: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("migrate_report_settings: could not query report_settings: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	record := core.NewRecord(col)
	record.Set("company_name", DefaultCompanyName)
	record.Set("footer_label", DefaultFooterLabel)
	record.Set("logo_path", DefaultLogoPath)
	record.Set("quote_terms", DefaultQuoteTerms)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("migrate_report_settings: could not create defaults: %w", err)
	}
	return nil
}
