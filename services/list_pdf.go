package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
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

// GenerateListPDF renders one list report as a landscape table with the
// blue banner header. Same layouts and row mappings as the Excel
// export, so the two downloads never disagree. Empty input yields
// ErrNothingToExport.
func GenerateListPDF(data ListReportData) ([]byte, error) {
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

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
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

	addListBanner(m, data, layout.title)
	addListTableHeader(m, layout.headers)
	for _, cells := range rows {
		critical := data.ReportType == ReportInventory && cells[len(cells)-1] == StockStatusCritical
		addListTableRow(m, cells, len(layout.headers), critical)
	}

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.GeneratedAt.Format("02/01/2006 15:04")),
					props.Text{Size: 7, Align: align.Left, Color: &reportGray},
				),
			),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate list PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addListBanner draws the blue banner: logo at the left edge, title and
// company name centered on the tint.
func addListBanner(m core.Maroto, data ListReportData, title string) {
	bannerCell := &props.Cell{BackgroundColor: &reportBlue}

	logoCol := col.New(2).WithStyle(bannerCell)
	if len(data.Logo) > 0 {
		logoCol = col.New(2).Add(
			image.NewFromBytes(data.Logo, extension.Png, props.Rect{
				Center:  true,
				Percent: 80,
			}),
		).WithStyle(bannerCell)
	}

	heading := title
	if data.CompanyName != "" {
		heading = data.CompanyName + " - " + title
	}

	m.AddRows(
		row.New(16).Add(
			logoCol,
			col.New(8).Add(
				text.New(heading, props.Text{
					Size:  15,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &reportWhite,
					Top:   4,
				}),
			).WithStyle(bannerCell),
			col.New(2).WithStyle(bannerCell),
		),
		row.New(4),
	)
}

func addListTableHeader(m core.Maroto, headers []string) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &reportWhite,
	}
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 16, Green: 24, Blue: 40}}

	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		cols = append(cols, col.New(listColSize(i, len(headers))).Add(
			text.New(h, headerText),
		).WithStyle(&headerCell))
	}
	m.AddRows(row.New(8).Add(cols...))
}

func addListTableRow(m core.Maroto, cells []string, total int, critical bool) {
	baseText := props.Text{Size: 7, Align: align.Left}
	var cellStyle *props.Cell
	if critical {
		baseText.Color = &alertRed
		baseText.Style = fontstyle.Bold
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 255, Green: 228, Blue: 230}}
	}

	cols := make([]core.Col, 0, len(cells))
	for i, v := range cells {
		c := col.New(listColSize(i, total)).Add(text.New(v, baseText))
		if cellStyle != nil {
			c = c.WithStyle(cellStyle)
		}
		cols = append(cols, c)
	}
	m.AddRows(row.New(7).Add(cols...))
}

// listColSize spreads the 12-unit maroto grid across n columns, giving
// the leftmost columns the leftover units.
func listColSize(i, n int) int {
	size := 12 / n
	if size == 0 {
		size = 1
	}
	if i < 12%n {
		size++
	}
	return size
}
