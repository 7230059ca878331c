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

// QuoteDocumentData drives the quote / sale note PDF. Signature is an
// optional PNG; absence only drops the image, never the document.
type QuoteDocumentData struct {
	Quote       Quote
	CompanyName string
	Logo        []byte // PNG, optional
	Signature   []byte // PNG, optional
	Terms       string
}

// QuoteDocTitle names the document by quote status: a pending or
// cancelled quote prints as a quote, anything further along the
// pipeline prints as a sale note.
func QuoteDocTitle(status string) string {
	switch status {
	case QuoteStatusApproved, QuoteStatusEnRoute, QuoteStatusDelivered:
		return "SALE NOTE"
	}
	return "QUOTE"
}

// GenerateQuotePDF renders one quote or sale note: header block,
// line-item table, total footer, signature and terms.
func GenerateQuotePDF(data QuoteDocumentData) ([]byte, error) {
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

	addQuoteHeader(m, data)
	addQuoteItemsHeader(m)
	for i, it := range data.Quote.Items {
		addQuoteItemRow(m, i+1, it)
	}
	addQuoteTotal(m, data.Quote)
	addQuoteSignature(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quote PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// QuotePDFFilename builds the download name, e.g. Quote_A1B2C3.pdf.
func QuotePDFFilename(q Quote) string {
	kind := "Quote"
	if QuoteDocTitle(q.Status) == "SALE NOTE" {
		kind = "Sale_Note"
	}
	return fmt.Sprintf("%s_%s.pdf", kind, sanitizeFilename(q.ID))
}

func addQuoteHeader(m core.Maroto, data QuoteDocumentData) {
	logoCol := col.New(3)
	if len(data.Logo) > 0 {
		logoCol = col.New(3).Add(
			image.NewFromBytes(data.Logo, extension.Png, props.Rect{Percent: 70}),
		)
	}

	m.AddRows(
		row.New(16).Add(
			logoCol,
			col.New(6).Add(
				text.New(QuoteDocTitle(data.Quote.Status), props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &reportBlue,
					Top:   3,
				}),
			),
			col.New(3).Add(
				text.New(data.CompanyName, props.Text{
					Size:  9,
					Align: align.Right,
					Top:   3,
				}),
			),
		),
		row.New(3),
	)

	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 9, Align: align.Left}
	m.AddRows(
		row.New(6).Add(
			col.New(2).Add(text.New("Client:", label)),
			col.New(5).Add(text.New(orNA(data.Quote.ClientName), value)),
			col.New(2).Add(text.New("Date:", label)),
			col.New(3).Add(text.New(orDash(data.Quote.CreatedDate), value)),
		),
		row.New(6).Add(
			col.New(2).Add(text.New("Email:", label)),
			col.New(5).Add(text.New(orDash(data.Quote.ClientEmail), value)),
			col.New(2).Add(text.New("Seller:", label)),
			col.New(3).Add(text.New(orDash(data.Quote.SellerName), value)),
		),
		row.New(4),
	)
}

func addQuoteItemsHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &reportWhite,
	}
	headerLeft := headerText
	headerLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: &reportBlue}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Code", headerText)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Product", headerLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Subtotal", headerText)).WithStyle(&headerCell),
		),
	)
}

func addQuoteItemRow(m core.Maroto, idx int, it QuoteItem) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	var cellStyle *props.Cell
	if idx%2 == 0 {
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	}

	subtotal := it.Quantity * it.PriceSnapshot
	cols := []core.Col{
		col.New(1).Add(text.New(fmt.Sprintf("%d", idx), baseText)),
		col.New(2).Add(text.New(orDash(it.Code), baseText)),
		col.New(5).Add(text.New(orNA(it.ProductName), leftText)),
		col.New(1).Add(text.New(formatQty(it.Quantity), rightText)),
		col.New(1).Add(text.New(FormatMoney(it.PriceSnapshot), rightText)),
		col.New(2).Add(text.New(FormatMoney(subtotal), rightText)),
	}
	if cellStyle != nil {
		for i := range cols {
			cols[i] = cols[i].WithStyle(cellStyle)
		}
	}
	m.AddRows(row.New(7).Add(cols...))
}

func addQuoteTotal(m core.Maroto, q Quote) {
	total := CleanNumber(q.Total)
	if total == 0 {
		for _, it := range q.Items {
			total += it.Quantity * it.PriceSnapshot
		}
	}

	totalCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(
				text.New("TOTAL", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
					Top:   1,
				}),
			).WithStyle(totalCell),
			col.New(4).Add(
				text.New(FormatMoney(total), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
					Top:   1,
				}),
			).WithStyle(totalCell),
		),
	)
}

func addQuoteSignature(m core.Maroto, data QuoteDocumentData) {
	m.AddRows(row.New(12))

	sigCol := col.New(5).Add(
		text.New("_________________________", props.Text{Size: 9, Align: align.Center}),
	)
	if len(data.Signature) > 0 {
		sigCol = col.New(5).Add(
			image.NewFromBytes(data.Signature, extension.Png, props.Rect{
				Center:  true,
				Percent: 60,
			}),
		)
	}

	m.AddRows(
		row.New(14).Add(
			col.New(7),
			sigCol,
		),
		row.New(5).Add(
			col.New(7),
			col.New(5).Add(
				text.New("Authorized signature", props.Text{
					Size:  8,
					Align: align.Center,
					Color: &reportGray,
				}),
			),
		),
	)

	if data.Terms != "" {
		m.AddRows(
			row.New(6),
			row.New(6).Add(
				col.New(12).Add(
					text.New("Terms and conditions", props.Text{
						Size:  8,
						Style: fontstyle.Bold,
						Align: align.Left,
					}),
				),
			),
			row.New(12).Add(
				col.New(12).Add(
					text.New(data.Terms, props.Text{
						Size:  7,
						Align: align.Left,
						Color: &reportGray,
					}),
				),
			),
		)
	}
}
