package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newFormPost builds an urlencoded form POST the way the frontend
// submits it.
func newFormPost(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// periodContext injects a fixed report period, bypassing the middleware.
func periodContext(req *http.Request, monthName string, year int) context.Context {
	period := ReportPeriod{MonthName: monthName, Year: year}
	for i, name := range monthNames {
		if name == monthName {
			period.Month = time.Month(i + 1)
		}
	}
	return context.WithValue(req.Context(), ReportPeriodKey, period)
}
