package services

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrNothingToExport signals an export request against an empty
// collection. Handlers reject it before any file bytes are produced.
var ErrNothingToExport = errors.New("nothing to export")

// List report types.
const (
	ReportProjects  = "projects"
	ReportInventory = "inventory"
	ReportPersonnel = "personnel"
)

// ListReportData is the input for the list exports (Excel and PDF):
// one report type, the snapshot slice it reads, and branding.
type ListReportData struct {
	ReportType  string
	Projects    []Project
	Inventory   []InventoryItem
	Employees   []Employee
	CompanyName string
	Logo        []byte // PNG, optional
	GeneratedAt time.Time
}

// listLayout is the fixed per-type column layout.
type listLayout struct {
	title   string
	headers []string
	widths  []float64
}

func layoutFor(reportType string) (listLayout, error) {
	switch reportType {
	case ReportProjects:
		return listLayout{
			title:   "Projects Report",
			headers: []string{"Project Name", "Client", "Location", "Status", "Progress (%)", "Budget", "Total Spent", "Start Date"},
			widths:  []float64{30, 22, 24, 12, 13, 16, 16, 14},
		}, nil
	case ReportInventory:
		return listLayout{
			title:   "Inventory Report",
			headers: []string{"Code", "Product Name", "Category", "Stock", "Min. Stock", "Unit", "Unit Price", "Status"},
			widths:  []float64{12, 32, 18, 10, 12, 10, 14, 12},
		}, nil
	case ReportPersonnel:
		return listLayout{
			title:   "Personnel Report",
			headers: []string{"Name", "Role", "Occupation", "Email", "Phone", "NSS", "Salary", "Payment Period", "Start Date"},
			widths:  []float64{26, 14, 18, 26, 14, 14, 14, 14, 12},
		}, nil
	default:
		return listLayout{}, fmt.Errorf("unknown report type %q", reportType)
	}
}

// listRows flattens the snapshot slice for the report type into string
// cells matching the layout headers. Missing values degrade to "N/A"
// or "-", statuses are uppercased.
func listRows(data ListReportData) ([][]string, error) {
	switch data.ReportType {
	case ReportProjects:
		rows := make([][]string, 0, len(data.Projects))
		for _, p := range data.Projects {
			rows = append(rows, []string{
				orNA(p.Name),
				orNA(p.ClientName),
				orNA(p.Location),
				strings.ToUpper(orDash(p.Status)),
				fmt.Sprintf("%d", p.Progress),
				FormatMoney(CleanNumber(p.Budget)),
				FormatMoney(CleanNumber(p.TotalSpent)),
				orDash(p.StartDate),
			})
		}
		return rows, nil
	case ReportInventory:
		rows := make([][]string, 0, len(data.Inventory))
		for _, it := range data.Inventory {
			rows = append(rows, []string{
				orDash(it.Code),
				orNA(it.Name),
				orDash(it.Category),
				fmt.Sprintf("%d", it.Stock),
				fmt.Sprintf("%d", it.MinStock),
				orDash(it.Unit),
				FormatMoney(it.Price),
				StockStatus(it),
			})
		}
		return rows, nil
	case ReportPersonnel:
		rows := make([][]string, 0, len(data.Employees))
		for _, emp := range data.Employees {
			rows = append(rows, []string{
				orNA(strings.TrimSpace(emp.FirstName + " " + emp.LastName)),
				strings.ToUpper(orDash(emp.Role)),
				orDash(emp.Occupation),
				orDash(emp.Email),
				orDash(emp.Phone),
				orDash(emp.NSS),
				FormatMoney(CleanNumber(emp.Salary)),
				orDash(emp.PaymentPeriod),
				orDash(emp.StartDate),
			})
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unknown report type %q", data.ReportType)
	}
}

// GenerateListExcel renders one list report as a styled workbook:
// banner logo, merged title, dark header band, bordered data rows.
// Inventory rows whose status is CRITICAL get the alert tint. An empty
// source slice yields ErrNothingToExport and no file.
func GenerateListExcel(data ListReportData) ([]byte, error) {
	layout, err := layoutFor(data.ReportType)
	if err != nil {
		return nil, err
	}
	rows, err := listRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := layout.title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	lastColIdx := len(layout.headers)
	lastCol, err := excelize.ColumnNumberToName(lastColIdx)
	if err != nil {
		return nil, fmt.Errorf("column name: %w", err)
	}

	for i, w := range layout.widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", name, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: "#101828"},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10, Color: "#6B7280"},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#101828"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: whiteThinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create data style: %w", err)
	}

	criticalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10, Bold: true, Color: "#991B1B"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFE4E6"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create critical style: %w", err)
	}

	// ── Banner (rows 1-3): logo top-left, merged centered title ─────────

	if len(data.Logo) > 0 {
		err := f.AddPictureFromBytes(sheetName, "A1", &excelize.Picture{
			Extension: ".png",
			File:      data.Logo,
			Format: &excelize.GraphicOptions{
				ScaleX:  0.35,
				ScaleY:  0.35,
				OffsetX: 4,
				OffsetY: 4,
			},
		})
		if err != nil {
			// Branding only, never blocks the export.
			log.Printf("report_excel: logo skipped: %v", err)
		}
	}

	if err := f.MergeCell(sheetName, "B1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	title := layout.title
	if data.CompanyName != "" {
		title = data.CompanyName + " - " + layout.title
	}
	f.SetCellValue(sheetName, "B1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "B1", lastCol+"1", titleStyle)
	if err := f.SetRowHeight(sheetName, 1, 30); err != nil {
		return nil, fmt.Errorf("set banner height: %w", err)
	}

	if err := f.MergeCell(sheetName, "B2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge subtitle: %w", err)
	}
	f.SetCellValue(sheetName, "B2", "Generated on "+data.GeneratedAt.Format("02/01/2006 15:04"))
	f.SetCellStyle(sheetName, "B2", lastCol+"2", subtitleStyle)

	// ── Row 4: column headers ───────────────────────────────────────────

	const headerRow = 4
	for i, h := range layout.headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", lastCol, headerRow), headerStyle)

	// ── Data rows ───────────────────────────────────────────────────────

	rowNum := headerRow + 1
	for _, cells := range rows {
		critical := data.ReportType == ReportInventory && cells[len(cells)-1] == StockStatusCritical
		for i, v := range cells {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			f.SetCellValue(sheetName, cell, sanitizeExcelCell(v))
		}
		style := dataStyle
		if critical {
			style = criticalStyle
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), style)
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// ListReportFilename builds the download name for one list export,
// e.g. Projects_Report_28-08-2026.xlsx.
func ListReportFilename(reportType string, ext string, at time.Time) string {
	layout, err := layoutFor(reportType)
	if err != nil {
		layout.title = "Report"
	}
	base := strings.ReplaceAll(layout.title, " ", "_")
	return fmt.Sprintf("%s_%s.%s", base, at.Format("02-01-2006"), ext)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '@', '\t', '\r', '|':
		return "'" + s
	case '-':
		// "-" placeholders and negative money strings are data, not
		// formulas, unless followed by a formula-looking body.
		if s == "-" || strings.HasPrefix(s, "-$") {
			return s
		}
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	return borders("#000000")
}

// whiteThinBorders separates the dark header cells from each other.
func whiteThinBorders() []excelize.Border {
	return borders("#FFFFFF")
}

func borders(color string) []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	bs := make([]excelize.Border, len(sides))
	for i, side := range sides {
		bs[i] = excelize.Border{
			Type:  side,
			Color: color,
			Style: 1, // thin
		}
	}
	return bs
}
