package services

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// statutoryDeductionRate is the flat estimate applied to gross pay
// until the payroll module carries real withholding tables.
const statutoryDeductionRate = 0.10

// PayslipData drives the payroll receipt PDF.
type PayslipData struct {
	Employee    Employee
	CompanyName string
	PeriodLabel string
	GeneratedAt time.Time
}

// PayslipAmounts is the gross/deduction/net split for one receipt.
type PayslipAmounts struct {
	Gross      float64
	Deductions float64
	Net        float64
}

// ComputePayslip derives the receipt amounts from the employee's
// salary field using the flat statutory estimate.
func ComputePayslip(emp Employee) PayslipAmounts {
	gross := CleanNumber(emp.Salary)
	deductions := gross * statutoryDeductionRate
	return PayslipAmounts{
		Gross:      gross,
		Deductions: deductions,
		Net:        gross - deductions,
	}
}

// GeneratePayslipPDF renders one payroll receipt: employee block,
// earnings/deductions table, net pay and signature lines.
func GeneratePayslipPDF(data PayslipData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addPayslipHeader(m, data)
	addPayslipEmployeeBlock(m, data.Employee)
	amounts := ComputePayslip(data.Employee)
	addPayslipAmounts(m, amounts)
	addPayslipSignatures(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate payslip PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// PayslipFilename builds the download name, e.g. Payslip_Ana_Lopez.pdf.
func PayslipFilename(emp Employee) string {
	name := sanitizeFilename(emp.FirstName + " " + emp.LastName)
	return fmt.Sprintf("Payslip_%s.pdf", name)
}

func addPayslipHeader(m core.Maroto, data PayslipData) {
	bannerCell := &props.Cell{BackgroundColor: &reportBlue}
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("PAYROLL RECEIPT", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &reportWhite,
					Top:   2,
				}),
			).WithStyle(bannerCell),
		),
		row.New(7).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{Size: 9, Align: align.Left, Top: 1}),
			),
			col.New(6).Add(
				text.New("Period: "+orDash(data.PeriodLabel), props.Text{Size: 9, Align: align.Right, Top: 1}),
			),
		),
		row.New(4),
	)
}

func addPayslipEmployeeBlock(m core.Maroto, emp Employee) {
	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 9, Align: align.Left}

	m.AddRows(
		row.New(6).Add(
			col.New(2).Add(text.New("Employee:", label)),
			col.New(5).Add(text.New(orNA(emp.FirstName+" "+emp.LastName), value)),
			col.New(2).Add(text.New("NSS:", label)),
			col.New(3).Add(text.New(orDash(emp.NSS), value)),
		),
		row.New(6).Add(
			col.New(2).Add(text.New("Occupation:", label)),
			col.New(5).Add(text.New(orDash(emp.Occupation), value)),
			col.New(2).Add(text.New("Start date:", label)),
			col.New(3).Add(text.New(orDash(emp.StartDate), value)),
		),
		row.New(6).Add(
			col.New(2).Add(text.New("Payment:", label)),
			col.New(5).Add(text.New(orDash(emp.PaymentPeriod), value)),
			col.New(2).Add(text.New("Email:", label)),
			col.New(3).Add(text.New(orDash(emp.Email), value)),
		),
		row.New(4),
	)
}

func addPayslipAmounts(m core.Maroto, amounts PayslipAmounts) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &reportWhite,
	}
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 16, Green: 24, Blue: 40}}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Concept", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)

	line := func(concept string, amount float64, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(7).Add(
			col.New(8).Add(text.New(concept, props.Text{Size: 9, Style: style, Align: align.Left})),
			col.New(4).Add(text.New(FormatMoney(amount), props.Text{Size: 9, Style: style, Align: align.Right})),
		)
	}

	m.AddRows(
		line("Gross salary", amounts.Gross, false),
		line(fmt.Sprintf("Statutory deductions (estimated %.0f%%)", statutoryDeductionRate*100), -amounts.Deductions, false),
	)

	netCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(
				text.New("NET PAY", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left, Top: 1}),
			).WithStyle(netCell),
			col.New(4).Add(
				text.New(FormatMoney(amounts.Net), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Top: 1}),
			).WithStyle(netCell),
		),
	)
}

func addPayslipSignatures(m core.Maroto, data PayslipData) {
	sigLine := props.Text{Size: 9, Align: align.Center}
	sigLabel := props.Text{Size: 8, Align: align.Center, Color: &reportGray}

	m.AddRows(
		row.New(20),
		row.New(6).Add(
			col.New(5).Add(text.New("_________________________", sigLine)),
			col.New(2),
			col.New(5).Add(text.New("_________________________", sigLine)),
		),
		row.New(5).Add(
			col.New(5).Add(text.New("Employee signature", sigLabel)),
			col.New(2),
			col.New(5).Add(text.New("Employer signature", sigLabel)),
		),
		row.New(8),
		row.New(5).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.GeneratedAt.Format("02/01/2006")),
					props.Text{Size: 7, Align: align.Left, Color: &reportGray},
				),
			),
		),
	)
}
