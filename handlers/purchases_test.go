package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"geoportal/services"
	"geoportal/testhelpers"
)

func receiveRequest(orderID string) *http.Request {
	req := newFormPost("/purchases/"+orderID+"/receive", url.Values{})
	req.SetPathValue("id", orderID)
	return req
}

func TestHandlePurchaseReceive(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	order := testhelpers.CreateTestPurchaseOrder(t, app, "Aceros MTY", services.PurchaseStatusPending, "$85,000")

	rec := httptest.NewRecorder()
	if err := HandlePurchaseReceive(app)(newTestRequestEvent(app, receiveRequest(order.Id), rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	reloaded, err := app.FindRecordById("purchase_orders", order.Id)
	if err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if got := reloaded.GetString("status"); got != services.PurchaseStatusReceived {
		t.Errorf("status = %q, want received", got)
	}
}

func TestHandlePurchaseReceive_AlreadyReceived(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	order := testhelpers.CreateTestPurchaseOrder(t, app, "Aceros MTY", services.PurchaseStatusReceived, "$85,000")

	rec := httptest.NewRecorder()
	if err := HandlePurchaseReceive(app)(newTestRequestEvent(app, receiveRequest(order.Id), rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlePurchaseReceive_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec := httptest.NewRecorder()
	if err := HandlePurchaseReceive(app)(newTestRequestEvent(app, receiveRequest("missing"), rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandlePurchaseSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("supplier_name", "Cementos Nacionales")
	form.Set("total", "128,700.50")
	rec := httptest.NewRecorder()

	if err := HandlePurchaseSave(app)(newTestRequestEvent(app, newFormPost("/purchases", form), rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	records, _ := app.FindAllRecords("purchase_orders")
	if len(records) != 1 {
		t.Fatalf("got %d orders, want 1", len(records))
	}
	if got := records[0].GetString("status"); got != services.PurchaseStatusPending {
		t.Errorf("new order status = %q, want pending", got)
	}
}

func TestHandlePurchaseSave_MissingSupplier(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec := httptest.NewRecorder()
	if err := HandlePurchaseSave(app)(newTestRequestEvent(app, newFormPost("/purchases", url.Values{}), rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
