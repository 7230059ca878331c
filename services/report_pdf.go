package services

import (
	"fmt"
	"log"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// BIReportData is everything the management report needs: the KPI set,
// the period label, company branding and the chart source.
type BIReportData struct {
	Metrics     DashboardMetrics
	CompanyName string
	FooterLabel string
	GeneratedAt time.Time
	Charts      ChartSource
}

// Report palette. Cover and chapter accents match the dashboard.
var (
	reportBlue  = props.Color{Red: 30, Green: 58, Blue: 138}
	reportWhite = props.Color{Red: 255, Green: 255, Blue: 255}
	reportGray  = props.Color{Red: 107, Green: 114, Blue: 128}
	alertRed    = props.Color{Red: 153, Green: 27, Blue: 27}
	okGreen     = props.Color{Red: 22, Green: 101, Blue: 52}
)

// GenerateBIReport renders the monthly management report: a cover page
// followed by three numbered chapters mixing narrative paragraphs with
// chart snapshots. Missing chart snapshots are logged and skipped; any
// maroto failure aborts the whole document so a partial PDF is never
// served.
func GenerateBIReport(data BIReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &reportGray,
		}).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(biFooterRow(data.FooterLabel, data.GeneratedAt)); err != nil {
		return nil, fmt.Errorf("register footer: %w", err)
	}

	m.AddPages(coverPage(data))

	addFinancialChapter(m, data)
	addPortfolioChapter(m, data)
	addLogisticsChapter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate management report: %w", err)
	}
	return doc.GetBytes(), nil
}

// BIReportFilename builds the download name for the given period,
// e.g. Management_Report_August_2026.pdf.
func BIReportFilename(monthName string, year int) string {
	return fmt.Sprintf("Management_Report_%s_%d.pdf", sanitizeFilename(monthName), year)
}

func biFooterRow(footerLabel string, generatedAt time.Time) core.Row {
	stamp := fmt.Sprintf("Generated on %s", generatedAt.Format("02/01/2006 15:04"))
	return row.New(6).Add(
		col.New(7).Add(
			text.New(footerLabel, props.Text{
				Size:  7,
				Align: align.Left,
				Color: &reportGray,
			}),
		),
		col.New(5).Add(
			text.New(stamp, props.Text{
				Size:  7,
				Align: align.Right,
				Color: &reportGray,
			}),
		),
	)
}

// coverPage is a full-page blue block with the report identity.
func coverPage(data BIReportData) core.Page {
	coverCell := &props.Cell{BackgroundColor: &reportBlue}
	period := fmt.Sprintf("%s %d", data.Metrics.MonthName, data.Metrics.Year)

	blank := func(h float64) core.Row {
		return row.New(h).Add(col.New(12).WithStyle(coverCell))
	}
	line := func(h float64, s string, t props.Text) core.Row {
		return row.New(h).Add(
			col.New(12).Add(text.New(s, t)).WithStyle(coverCell),
		)
	}

	return page.New().Add(
		blank(80),
		line(14, data.CompanyName, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: &reportWhite,
		}),
		line(18, "Monthly Management Report", props.Text{
			Size:  24,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: &reportWhite,
		}),
		line(12, period, props.Text{
			Size:  13,
			Align: align.Center,
			Color: &reportWhite,
		}),
		blank(70),
		line(8, fmt.Sprintf("Generated automatically on %s", data.GeneratedAt.Format("02/01/2006")), props.Text{
			Size:  9,
			Align: align.Center,
			Color: &reportWhite,
		}),
		blank(30),
	)
}

func addFinancialChapter(m core.Maroto, data BIReportData) {
	addChapterTitle(m, "1. Financial Results for the Period")

	mo := data.Metrics.Month
	narrative := fmt.Sprintf(
		"During %s %d the company recorded sales of %s against purchases of %s, "+
			"closing the period with a profit of %s. Across the whole project portfolio, "+
			"%s of the %s authorized budget has been executed, a utilization of %s.",
		data.Metrics.MonthName, data.Metrics.Year,
		FormatMoney(mo.Sales), FormatMoney(mo.Purchases), FormatMoney(mo.Profit),
		FormatMoney(data.Metrics.Health.TotalSpent), FormatMoney(data.Metrics.Health.TotalBudget),
		FormatPercent(data.Metrics.Health.HealthPercent),
	)
	addParagraph(m, narrative)

	addChartRow(m, data.Charts, []chartSlot{
		{id: ChartFinancialEvolution, caption: "Financial evolution", width: 12, height: 85},
	})
}

func addPortfolioChapter(m core.Maroto, data BIReportData) {
	addChapterTitle(m, "2. Portfolio Status")

	st := data.Metrics.Statuses
	if st.Total == 0 {
		addParagraph(m, "(no data) There are no projects registered for this period.")
	} else {
		narrative := fmt.Sprintf(
			"The portfolio holds %d projects: %d active, %d paused and %d finished. "+
				"Average physical progress across the portfolio stands at %d%%.",
			st.Total, st.Active, st.Paused, st.Finished, data.Metrics.AvgProgress,
		)
		addParagraph(m, narrative)
	}

	addChartRow(m, data.Charts, []chartSlot{
		{id: ChartStatusBreakdown, caption: "Status breakdown", width: 6, height: 70},
		{id: ChartTopProgress, caption: "Top progress", width: 6, height: 70},
	})
}

func addLogisticsChapter(m core.Maroto, data BIReportData) {
	addChapterTitle(m, "3. Inventory and Logistics Alerts")

	if data.Metrics.LowStockCount > 0 {
		addColoredLine(m, fmt.Sprintf(
			"CRITICAL: %d inventory items are at or below their minimum stock level.",
			data.Metrics.LowStockCount,
		), alertRed, fontstyle.Bold)
		addParagraph(m, "Recommendation: raise purchase orders for the affected items before the next work front opens.")
	} else {
		addColoredLine(m, "Inventory levels are healthy: no items below their minimum stock.", okGreen, fontstyle.Normal)
	}

	addColoredLine(m, fmt.Sprintf(
		"- %d purchase orders pending reception from suppliers.",
		data.Metrics.PendingPurchases.Count,
	), reportGray, fontstyle.Normal)
	addColoredLine(m, fmt.Sprintf(
		"- %d quotes pending approval, worth %s.",
		data.Metrics.PendingSales.Count,
		FormatMoney(data.Metrics.PendingSales.TotalAmount),
	), reportGray, fontstyle.Normal)
}

func addChapterTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(4),
		row.New(10).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &reportBlue,
				}),
			),
		),
		row.New(2),
	)
}

func addParagraph(m core.Maroto, s string) {
	m.AddRows(
		row.New(18).Add(
			col.New(12).Add(
				text.New(s, props.Text{
					Size:  10,
					Align: align.Left,
					Top:   1,
				}),
			),
		),
	)
}

func addColoredLine(m core.Maroto, s string, color props.Color, style fontstyle.Type) {
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(s, props.Text{
					Size:  10,
					Style: style,
					Align: align.Left,
					Color: &color,
				}),
			),
		),
	)
}

type chartSlot struct {
	id      string
	caption string
	width   int
	height  float64
}

// addChartRow captures each slot's snapshot and lays the images out on
// one row. Slots whose capture fails are rendered as a placeholder line
// instead; the chapter text above is unaffected.
func addChartRow(m core.Maroto, src ChartSource, slots []chartSlot) {
	if src == nil {
		return
	}
	height := slots[0].height
	cols := make([]core.Col, 0, len(slots))
	for _, slot := range slots {
		png, err := src.Capture(slot.id)
		if err != nil {
			log.Printf("report_pdf: chart %s skipped: %v", slot.id, err)
			cols = append(cols, col.New(slot.width).Add(
				text.New(fmt.Sprintf("[%s chart not available]", slot.caption), props.Text{
					Size:  8,
					Align: align.Center,
					Color: &reportGray,
					Top:   height / 2,
				}),
			))
			continue
		}
		cols = append(cols, col.New(slot.width).Add(
			image.NewFromBytes(png, extension.Png, props.Rect{
				Center:  true,
				Percent: 95,
			}),
		))
	}
	m.AddRows(
		row.New(height).Add(cols...),
		row.New(4),
	)
}
