package handlers

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"

	"geoportal/collections"
)

// Branding is the company identity stamped onto generated documents.
type Branding struct {
	CompanyName string
	FooterLabel string
	LogoPath    string
	QuoteTerms  string
}

// loadBranding reads the report_settings record, falling back to the
// defaults when the record is missing or unreadable.
func loadBranding(app *pocketbase.PocketBase) Branding {
	fallback := Branding{
		CompanyName: collections.DefaultCompanyName,
		FooterLabel: collections.DefaultFooterLabel,
		LogoPath:    collections.DefaultLogoPath,
		QuoteTerms:  collections.DefaultQuoteTerms,
	}

	col, err := app.FindCollectionByNameOrId("report_settings")
	if err != nil {
		return fallback
	}
	records, err := app.FindAllRecords(col)
	if err != nil || len(records) == 0 {
		return fallback
	}

	r := records[0]
	b := Branding{
		CompanyName: r.GetString("company_name"),
		FooterLabel: r.GetString("footer_label"),
		LogoPath:    r.GetString("logo_path"),
		QuoteTerms:  r.GetString("quote_terms"),
	}
	if b.CompanyName == "" {
		b.CompanyName = fallback.CompanyName
	}
	return b
}

// loadLogo reads the branding logo PNG. Missing or unreadable logos
// are logged and skipped -- branding never blocks a download.
func loadLogo(path string) []byte {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		log.Printf("branding: logo %s skipped: %v", path, err)
		return nil
	}
	return b
}
