package services

import (
	"bytes"
	"testing"
	"time"
)

func TestVacationBalanceAfter(t *testing.T) {
	emp := Employee{VacationDays: 14}
	if got := VacationBalanceAfter(emp, 5); got != 9 {
		t.Errorf("VacationBalanceAfter(14, 5) = %d, want 9", got)
	}
	if got := VacationBalanceAfter(emp, 14); got != 0 {
		t.Errorf("VacationBalanceAfter(14, 14) = %d, want 0", got)
	}
	if got := VacationBalanceAfter(emp, 20); got != -6 {
		t.Errorf("VacationBalanceAfter(14, 20) = %d, want -6", got)
	}
}

func TestGenerateVacationPDF(t *testing.T) {
	data := VacationRequestData{
		Employee: Employee{
			FirstName:    "Ramiro",
			LastName:     "Garza",
			Occupation:   "Site supervisor",
			NSS:          "12847563901",
			StartDate:    "2022-04-18",
			VacationDays: 14,
		},
		CompanyName: "Constructora del Norte",
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-11",
		Days:        5,
		GeneratedAt: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}

	result, err := GenerateVacationPDF(data)
	if err != nil {
		t.Fatalf("GenerateVacationPDF() error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Error("result does not start with PDF header")
	}
}

func TestGenerateVacationPDF_NoPeriod(t *testing.T) {
	data := VacationRequestData{
		Employee:    Employee{FirstName: "Jorge", LastName: "Ibarra", VacationDays: 16},
		CompanyName: "CDN",
		Days:        3,
		GeneratedAt: time.Now(),
	}

	if _, err := GenerateVacationPDF(data); err != nil {
		t.Fatalf("GenerateVacationPDF() without period error = %v", err)
	}
}

func TestVacationFilename(t *testing.T) {
	emp := Employee{FirstName: "Ramiro", LastName: "Garza"}
	if got := VacationFilename(emp); got != "Vacation_Request_Ramiro-Garza.pdf" {
		t.Errorf("VacationFilename() = %q", got)
	}
}
