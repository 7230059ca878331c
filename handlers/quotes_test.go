package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"geoportal/services"
	"geoportal/testhelpers"
)

func statusChangeRequest(quoteID, next string) *http.Request {
	form := url.Values{}
	form.Set("status", next)
	req := newFormPost("/quotes/"+quoteID+"/status", form)
	req.SetPathValue("id", quoteID)
	return req
}

func TestHandleQuoteStatus_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		wantCode int
	}{
		{"pending to approved", services.QuoteStatusPending, services.QuoteStatusApproved, http.StatusOK},
		{"pending to cancelled", services.QuoteStatusPending, services.QuoteStatusCancelled, http.StatusOK},
		{"approved to en_route", services.QuoteStatusApproved, services.QuoteStatusEnRoute, http.StatusOK},
		{"en_route to delivered", services.QuoteStatusEnRoute, services.QuoteStatusDelivered, http.StatusOK},
		{"pending cannot skip to delivered", services.QuoteStatusPending, services.QuoteStatusDelivered, http.StatusBadRequest},
		{"delivered is terminal", services.QuoteStatusDelivered, services.QuoteStatusApproved, http.StatusBadRequest},
		{"cancelled is terminal", services.QuoteStatusCancelled, services.QuoteStatusPending, http.StatusBadRequest},
		{"unknown status rejected", services.QuoteStatusPending, "shipped", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			quote := testhelpers.CreateTestQuote(t, app, "Client A", tt.from, "$10,000")

			rec := httptest.NewRecorder()
			if err := HandleQuoteStatus(app)(newTestRequestEvent(app, statusChangeRequest(quote.Id, tt.to), rec)); err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, tt.wantCode, rec.Body.String())
			}

			reloaded, err := app.FindRecordById("quotes", quote.Id)
			if err != nil {
				t.Fatalf("reload quote: %v", err)
			}
			want := tt.from
			if tt.wantCode == http.StatusOK {
				want = tt.to
			}
			if got := reloaded.GetString("status"); got != want {
				t.Errorf("stored status = %q, want %q", got, want)
			}
		})
	}
}

func TestHandleQuoteStatus_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec := httptest.NewRecorder()
	if err := HandleQuoteStatus(app)(newTestRequestEvent(app, statusChangeRequest("missing", services.QuoteStatusApproved), rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleQuoteSave_AlwaysStartsPending(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("client_name", "Inmobiliaria Alamos")
	form.Set("status", services.QuoteStatusDelivered) // ignored
	form.Set("total", "$148,350")
	rec := httptest.NewRecorder()

	if err := HandleQuoteSave(app)(newTestRequestEvent(app, newFormPost("/quotes", form), rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	records, _ := app.FindAllRecords("quotes")
	if len(records) != 1 {
		t.Fatalf("got %d quotes, want 1", len(records))
	}
	if got := records[0].GetString("status"); got != services.QuoteStatusPending {
		t.Errorf("status = %q, want pending regardless of form input", got)
	}
}

func TestHandleQuoteSave_MissingClient(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec := httptest.NewRecorder()
	if err := HandleQuoteSave(app)(newTestRequestEvent(app, newFormPost("/quotes", url.Values{}), rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleQuoteDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Client A", services.QuoteStatusPending, "0")
	testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Cement", 10, 215.50)

	req := httptest.NewRequest(http.MethodDelete, "/quotes/"+quote.Id, nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()

	if err := HandleQuoteDelete(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	// Line items cascade with the quote.
	items, err := app.FindAllRecords("quote_items")
	if err != nil {
		t.Fatalf("find quote_items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d orphaned quote items, want 0", len(items))
	}
}
