package services

import (
	"bytes"
	"testing"
)

func testQuote(status string) Quote {
	return Quote{
		ID:          "q123",
		ClientName:  "Inmobiliaria Alamos SA",
		ClientEmail: "compras@alamos.mx",
		SellerName:  "L. Cantu",
		Status:      status,
		Total:       "$148,350.00",
		CreatedDate: "15/08/2026",
		Items: []QuoteItem{
			{Code: "CEM-42R", ProductName: "Cement CPC 40kg", Quantity: 400, PriceSnapshot: 215.50},
			{Code: "VAR-38", ProductName: "Rebar 3/8\" 12m", Quantity: 250, PriceSnapshot: 168.00},
		},
	}
}

func TestQuoteDocTitle(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{QuoteStatusPending, "QUOTE"},
		{QuoteStatusCancelled, "QUOTE"},
		{QuoteStatusApproved, "SALE NOTE"},
		{QuoteStatusEnRoute, "SALE NOTE"},
		{QuoteStatusDelivered, "SALE NOTE"},
		{"", "QUOTE"},
	}
	for _, tt := range tests {
		if got := QuoteDocTitle(tt.status); got != tt.want {
			t.Errorf("QuoteDocTitle(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	data := QuoteDocumentData{
		Quote:       testQuote(QuoteStatusPending),
		CompanyName: "Constructora del Norte",
		Terms:       "Prices valid for 15 days.",
	}

	result, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Error("result does not start with PDF header")
	}
}

func TestGenerateQuotePDF_WithImages(t *testing.T) {
	png := testPNG(t)
	data := QuoteDocumentData{
		Quote:       testQuote(QuoteStatusApproved),
		CompanyName: "Constructora del Norte",
		Logo:        png,
		Signature:   png,
	}

	if _, err := GenerateQuotePDF(data); err != nil {
		t.Fatalf("GenerateQuotePDF() with images error = %v", err)
	}
}

func TestGenerateQuotePDF_NoItems(t *testing.T) {
	q := testQuote(QuoteStatusPending)
	q.Items = nil
	data := QuoteDocumentData{Quote: q, CompanyName: "CDN"}

	if _, err := GenerateQuotePDF(data); err != nil {
		t.Fatalf("GenerateQuotePDF() without items error = %v", err)
	}
}

func TestQuotePDFFilename(t *testing.T) {
	if got := QuotePDFFilename(testQuote(QuoteStatusPending)); got != "Quote_q123.pdf" {
		t.Errorf("QuotePDFFilename(pending) = %q", got)
	}
	if got := QuotePDFFilename(testQuote(QuoteStatusDelivered)); got != "Sale_Note_q123.pdf" {
		t.Errorf("QuotePDFFilename(delivered) = %q", got)
	}
}
