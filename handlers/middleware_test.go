package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPeriodFrom(t *testing.T) {
	fallback := ReportPeriod{MonthName: "August", Month: time.August, Year: 2026}

	tests := []struct {
		name      string
		monthStr  string
		yearStr   string
		wantMonth time.Month
		wantName  string
		wantYear  int
	}{
		{"both valid", "3", "2025", time.March, "March", 2025},
		{"month only", "12", "", time.December, "December", 2026},
		{"year only", "", "2024", time.August, "August", 2024},
		{"month zero ignored", "0", "2025", time.August, "August", 2025},
		{"month thirteen ignored", "13", "2025", time.August, "August", 2025},
		{"year out of range ignored", "6", "1800", time.June, "June", 2026},
		{"garbage ignored", "abc", "xyz", time.August, "August", 2026},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := periodFrom(tt.monthStr, tt.yearStr, fallback)
			if got.Month != tt.wantMonth {
				t.Errorf("Month = %v, want %v", got.Month, tt.wantMonth)
			}
			if got.MonthName != tt.wantName {
				t.Errorf("MonthName = %q, want %q", got.MonthName, tt.wantName)
			}
			if got.Year != tt.wantYear {
				t.Errorf("Year = %d, want %d", got.Year, tt.wantYear)
			}
		})
	}
}

func TestSplitPeriodCookie(t *testing.T) {
	tests := []struct {
		input string
		month string
		year  string
		ok    bool
	}{
		{"8-2026", "8", "2026", true},
		{"12-2025", "12", "2025", true},
		{"-2026", "", "2026", true},
		{"82026", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		month, year, ok := splitPeriodCookie(tt.input)
		if month != tt.month || year != tt.year || ok != tt.ok {
			t.Errorf("splitPeriodCookie(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.input, month, year, ok, tt.month, tt.year, tt.ok)
		}
	}
}

func TestGetReportPeriod_FromContext(t *testing.T) {
	want := ReportPeriod{MonthName: "March", Month: time.March, Year: 2025}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), ReportPeriodKey, want))

	if got := GetReportPeriod(req); got != want {
		t.Errorf("GetReportPeriod() = %+v, want %+v", got, want)
	}
}

func TestGetReportPeriod_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got := GetReportPeriod(req)

	now := time.Now()
	if got.Month != now.Month() || got.Year != now.Year() {
		t.Errorf("GetReportPeriod() without context = %+v, want current month", got)
	}
	if got.MonthName != monthNames[now.Month()-1] {
		t.Errorf("MonthName = %q", got.MonthName)
	}
}
