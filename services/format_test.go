package services

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$0.00"},
		{"under a thousand", 999.9, "$999.90"},
		{"exact thousand", 1000, "$1,000.00"},
		{"typical", 1234.5, "$1,234.50"},
		{"millions", 1250000, "$1,250,000.00"},
		{"negative", -450.25, "-$450.25"},
		{"rounds to cents", 12.345, "$12.35"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.amount); got != tt.want {
				t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(83.333); got != "83.3%" {
		t.Errorf("FormatPercent(83.333) = %q, want 83.3%%", got)
	}
	if got := FormatPercent(120); got != "120.0%" {
		t.Errorf("FormatPercent(120) = %q, want 120.0%%", got)
	}
}

func TestFormatQty(t *testing.T) {
	if got := formatQty(10); got != "10" {
		t.Errorf("formatQty(10) = %q, want 10", got)
	}
	if got := formatQty(2.5); got != "2.50" {
		t.Errorf("formatQty(2.5) = %q, want 2.50", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "Management Report", "Management-Report"},
		{"slashes to hyphens", "a/b", "a-b"},
		{"backslashes", "a\\b", "a-b"},
		{"colons", "a:b", "a-b"},
		{"clean stays", "August", "August"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.input); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
