package handlers

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"geoportal/collections"
	"geoportal/testhelpers"
)

func TestLoadBranding_Defaults(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	b := loadBranding(app)
	if b.CompanyName != collections.DefaultCompanyName {
		t.Errorf("CompanyName = %q, want default", b.CompanyName)
	}
	if b.QuoteTerms != collections.DefaultQuoteTerms {
		t.Errorf("QuoteTerms = %q, want default", b.QuoteTerms)
	}
}

func TestLoadBranding_FromRecord(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("report_settings")
	if err != nil {
		t.Fatalf("find report_settings: %v", err)
	}
	record := core.NewRecord(col)
	record.Set("company_name", "Constructora Pacifico")
	record.Set("quote_terms", "Net 30.")
	if err := app.Save(record); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	b := loadBranding(app)
	if b.CompanyName != "Constructora Pacifico" {
		t.Errorf("CompanyName = %q", b.CompanyName)
	}
	if b.QuoteTerms != "Net 30." {
		t.Errorf("QuoteTerms = %q", b.QuoteTerms)
	}
}

func TestLoadLogo_MissingFile(t *testing.T) {
	if b := loadLogo("/nonexistent/logo.png"); b != nil {
		t.Error("missing logo should return nil")
	}
	if b := loadLogo(""); b != nil {
		t.Error("empty path should return nil")
	}
}
