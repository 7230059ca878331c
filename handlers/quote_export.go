package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/services"
)

// HandleQuoteExportPDF generates and downloads one quote or sale note.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		quote, err := LoadQuote(app, quoteID)
		if err != nil {
			log.Printf("quote_export: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		branding := loadBranding(app)
		data := services.QuoteDocumentData{
			Quote:       quote,
			CompanyName: branding.CompanyName,
			Logo:        loadLogo(branding.LogoPath),
			Terms:       branding.QuoteTerms,
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := services.QuotePDFFilename(quote)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
