package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type contextKey string

const ReportPeriodKey contextKey = "reportPeriod"

// ReportPeriod is the month/year the dashboard and reports operate on.
type ReportPeriod struct {
	MonthName string
	Month     time.Month
	Year      int
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// GetReportPeriod extracts the report period from the request context,
// defaulting to the current month.
func GetReportPeriod(r *http.Request) ReportPeriod {
	if val, ok := r.Context().Value(ReportPeriodKey).(ReportPeriod); ok {
		return val
	}
	return currentPeriod()
}

func currentPeriod() ReportPeriod {
	now := time.Now()
	return ReportPeriod{
		MonthName: monthNames[now.Month()-1],
		Month:     now.Month(),
		Year:      now.Year(),
	}
}

// periodFrom builds a ReportPeriod from raw month/year strings,
// falling back to the given default for anything out of range.
func periodFrom(monthStr, yearStr string, fallback ReportPeriod) ReportPeriod {
	p := fallback
	if m, err := strconv.Atoi(monthStr); err == nil && m >= 1 && m <= 12 {
		p.Month = time.Month(m)
		p.MonthName = monthNames[m-1]
	}
	if y, err := strconv.Atoi(yearStr); err == nil && y >= 2000 && y <= 2100 {
		p.Year = y
	}
	return p
}

// ReportPeriodMiddleware reads the "report_period" cookie (mm-yyyy)
// and stores the resolved period in the request context. Handlers
// still prefer explicit ?month=&year= query params; the cookie keeps
// the selection sticky across dashboard and report requests.
func ReportPeriodMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		period := currentPeriod()

		if cookie, err := e.Request.Cookie("report_period"); err == nil && cookie.Value != "" {
			if monthStr, yearStr, ok := splitPeriodCookie(cookie.Value); ok {
				period = periodFrom(monthStr, yearStr, period)
			}
		}

		// Query params win over the cookie and refresh it.
		q := e.Request.URL.Query()
		if q.Get("month") != "" || q.Get("year") != "" {
			period = periodFrom(q.Get("month"), q.Get("year"), period)
			http.SetCookie(e.Response, &http.Cookie{
				Name:     "report_period",
				Value:    strconv.Itoa(int(period.Month)) + "-" + strconv.Itoa(period.Year),
				Path:     "/",
				MaxAge:   86400 * 30,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(e.Request.Context(), ReportPeriodKey, period)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

func splitPeriodCookie(v string) (month, year string, ok bool) {
	for i := 0; i < len(v); i++ {
		if v[i] == '-' {
			return v[:i], v[i+1:], true
		}
	}
	return "", "", false
}
