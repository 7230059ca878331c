package services

import (
	"bytes"
	"testing"
	"time"
)

func TestComputePayslip(t *testing.T) {
	tests := []struct {
		name   string
		salary any
		gross  float64
		net    float64
	}{
		{"formatted salary", "$28,500", 28500, 25650},
		{"plain salary", "4850", 4850, 4365},
		{"garbage salary", "tbd", 0, 0},
		{"empty salary", "", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePayslip(Employee{Salary: tt.salary})
			if got.Gross != tt.gross {
				t.Errorf("Gross = %v, want %v", got.Gross, tt.gross)
			}
			if got.Net != tt.net {
				t.Errorf("Net = %v, want %v", got.Net, tt.net)
			}
			if got.Deductions != tt.gross-tt.net {
				t.Errorf("Deductions = %v, want %v", got.Deductions, tt.gross-tt.net)
			}
		})
	}
}

func TestGeneratePayslipPDF(t *testing.T) {
	data := PayslipData{
		Employee: Employee{
			FirstName:     "Ramiro",
			LastName:      "Garza",
			Occupation:    "Site supervisor",
			NSS:           "12847563901",
			Salary:        "$28,500",
			PaymentPeriod: "monthly",
			StartDate:     "2022-04-18",
		},
		CompanyName: "Constructora del Norte",
		PeriodLabel: "August 2026",
		GeneratedAt: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}

	result, err := GeneratePayslipPDF(data)
	if err != nil {
		t.Fatalf("GeneratePayslipPDF() error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Error("result does not start with PDF header")
	}
}

func TestPayslipFilename(t *testing.T) {
	emp := Employee{FirstName: "Ramiro", LastName: "Garza"}
	if got := PayslipFilename(emp); got != "Payslip_Ramiro-Garza.pdf" {
		t.Errorf("PayslipFilename() = %q", got)
	}
}
