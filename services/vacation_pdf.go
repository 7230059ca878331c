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

// VacationRequestData drives the vacation request form PDF.
type VacationRequestData struct {
	Employee    Employee
	CompanyName string
	StartDate   string
	EndDate     string
	Days        int
	GeneratedAt time.Time
}

// VacationBalanceAfter is the employee's remaining balance once the
// requested days are taken. Negative means the request overdraws.
func VacationBalanceAfter(emp Employee, days int) int {
	return emp.VacationDays - days
}

// GenerateVacationPDF renders one vacation request form: employee
// block, request summary with the balance breakdown and approval
// signature lines.
func GenerateVacationPDF(data VacationRequestData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addVacationHeader(m, data)
	addVacationEmployeeBlock(m, data.Employee)
	addVacationSummary(m, data)
	addVacationSignatures(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate vacation PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// VacationFilename builds the download name,
// e.g. Vacation_Request_Ana-Lopez.pdf.
func VacationFilename(emp Employee) string {
	name := sanitizeFilename(emp.FirstName + " " + emp.LastName)
	return fmt.Sprintf("Vacation_Request_%s.pdf", name)
}

func addVacationHeader(m core.Maroto, data VacationRequestData) {
	bannerCell := &props.Cell{BackgroundColor: &reportBlue}
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("VACATION REQUEST", props.Text{
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
				text.New("Date: "+data.GeneratedAt.Format("02/01/2006"), props.Text{Size: 9, Align: align.Right, Top: 1}),
			),
		),
		row.New(4),
	)
}

func addVacationEmployeeBlock(m core.Maroto, emp Employee) {
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
			col.New(2).Add(text.New("Hired:", label)),
			col.New(3).Add(text.New(orDash(emp.StartDate), value)),
		),
		row.New(4),
	)
}

func addVacationSummary(m core.Maroto, data VacationRequestData) {
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
			col.New(4).Add(text.New("Days", headerText)).WithStyle(&headerCell),
		),
	)

	line := func(concept string, days string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(7).Add(
			col.New(8).Add(text.New(concept, props.Text{Size: 9, Style: style, Align: align.Left})),
			col.New(4).Add(text.New(days, props.Text{Size: 9, Style: style, Align: align.Right})),
		)
	}

	period := "-"
	if data.StartDate != "" && data.EndDate != "" {
		period = fmt.Sprintf("%s to %s", data.StartDate, data.EndDate)
	}

	m.AddRows(
		line("Available balance", fmt.Sprintf("%d", data.Employee.VacationDays), false),
		line("Days requested ("+period+")", fmt.Sprintf("%d", data.Days), false),
	)

	remainingCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(
				text.New("BALANCE AFTER RETURN", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left, Top: 1}),
			).WithStyle(remainingCell),
			col.New(4).Add(
				text.New(fmt.Sprintf("%d", VacationBalanceAfter(data.Employee, data.Days)), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Top: 1}),
			).WithStyle(remainingCell),
		),
	)
}

func addVacationSignatures(m core.Maroto, data VacationRequestData) {
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
			col.New(5).Add(text.New("Supervisor approval", sigLabel)),
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
