package services

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"
)

// testPNG renders a small solid PNG so image embedding exercises the
// real decode path.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 58, B: 138, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test PNG: %v", err)
	}
	return buf.Bytes()
}

type fakeChartSource struct {
	images map[string][]byte
}

func (f *fakeChartSource) Capture(chartID string) ([]byte, error) {
	img, ok := f.images[chartID]
	if !ok {
		return nil, errors.New("no snapshot")
	}
	return img, nil
}

func testMetrics() DashboardMetrics {
	snap := Snapshot{
		Projects: []Project{
			{Name: "Residencial Los Alamos", Status: ProjectStatusActive, Progress: 65, Budget: "$4,500,000", TotalSpent: "2,870,500"},
			{Name: "Warehouse", Status: ProjectStatusPaused, Progress: 45, Budget: "1,850,000", TotalSpent: "912,300"},
		},
		Inventory: []InventoryItem{
			{Name: "Rebar", Stock: 45, MinStock: 60},
		},
		Quotes: []Quote{
			{ClientName: "Alamos", Status: QuoteStatusPending, Total: "$148,350"},
		},
		Purchases: []PurchaseOrder{
			{SupplierName: "Aceros", Status: PurchaseStatusPending},
		},
		Buckets: []MonthlyBucket{
			{Month: "August", Year: 2026, Sales: "486,750", Purchases: "353,400.25", HasProfit: false},
		},
	}
	return BuildMetrics(snap, "August", 2026)
}

func TestGenerateBIReport_WithCharts(t *testing.T) {
	png := testPNG(t)
	data := BIReportData{
		Metrics:     testMetrics(),
		CompanyName: "Constructora del Norte",
		FooterLabel: "Internal management report",
		GeneratedAt: time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
		Charts: &fakeChartSource{images: map[string][]byte{
			ChartFinancialEvolution: png,
			ChartStatusBreakdown:    png,
			ChartTopProgress:        png,
		}},
	}

	result, err := GenerateBIReport(data)
	if err != nil {
		t.Fatalf("GenerateBIReport() error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Error("result does not start with PDF header")
	}
}

func TestGenerateBIReport_MissingChartsStillSucceeds(t *testing.T) {
	data := BIReportData{
		Metrics:     testMetrics(),
		CompanyName: "Constructora del Norte",
		GeneratedAt: time.Now(),
		Charts:      &fakeChartSource{images: nil}, // every capture fails
	}

	result, err := GenerateBIReport(data)
	if err != nil {
		t.Fatalf("GenerateBIReport() with failing chart source error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Error("result does not start with PDF header")
	}
}

func TestGenerateBIReport_NilChartSource(t *testing.T) {
	data := BIReportData{
		Metrics:     testMetrics(),
		CompanyName: "Constructora del Norte",
		GeneratedAt: time.Now(),
	}

	if _, err := GenerateBIReport(data); err != nil {
		t.Fatalf("GenerateBIReport() without chart source error = %v", err)
	}
}

func TestGenerateBIReport_EmptyPortfolio(t *testing.T) {
	data := BIReportData{
		Metrics:     BuildMetrics(Snapshot{}, "January", 2026),
		CompanyName: "Constructora del Norte",
		GeneratedAt: time.Now(),
	}

	result, err := GenerateBIReport(data)
	if err != nil {
		t.Fatalf("GenerateBIReport() on empty snapshot error = %v", err)
	}
	if len(result) == 0 {
		t.Error("empty snapshot produced no document")
	}
}

func TestBIReportFilename(t *testing.T) {
	got := BIReportFilename("August", 2026)
	want := "Management_Report_August_2026.pdf"
	if got != want {
		t.Errorf("BIReportFilename() = %q, want %q", got, want)
	}

	if got := BIReportFilename("bad/month name", 2026); strings.ContainsAny(got, "/ ") {
		t.Errorf("filename %q contains unsafe characters", got)
	}
}
