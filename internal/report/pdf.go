package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/porquinho-server/internal/money"
	"github.com/carson-networks/porquinho-server/internal/service"
)

// Data is everything a report page shows.
type Data struct {
	GeneratedAt time.Time
	Records     []service.Record
	Summary     *service.DashboardSummary
	Projection  *service.Projection
}

var (
	headerFill = [3]int{40, 40, 40}
	headerText = [3]int{255, 255, 255}
	bodyText   = [3]int{50, 50, 50}
	lineColor  = [3]int{200, 200, 200}
)

// WritePDF renders the records table, the KPI block and the projection table.
func WritePDF(w io.Writer, data Data) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Porquinho - relatório financeiro"), false)
	pdf.AddPage()

	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(headerText[0], headerText[1], headerText[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 12, tr("Relatório financeiro"), "", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(bodyText[0], bodyText[1], bodyText[2])
	pdf.CellFormat(190, 6, tr("Gerado em "+data.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	if data.Summary != nil {
		section(pdf, tr("Resumo"))
		summaryLines(pdf, tr, data.Summary)
	}

	section(pdf, tr("Histórico mensal"))
	table(pdf, tr,
		[]string{"Mês", "Entrada", "Saída", "Saldo do mês", "Guardado"},
		[]float64{30, 40, 40, 40, 40},
		recordRows(data.Records),
	)

	if data.Projection != nil {
		p := data.Projection
		section(pdf, tr(fmt.Sprintf("Simulação Porquinho (%d meses, aporte %s, taxa %s a.m.)",
			p.Months, money.FormatBRLFloat(p.MonthlyContribution), money.FormatPercent(p.MonthlyRate))))
		table(pdf, tr,
			[]string{"Mês", "Saldo", "Rendimento", "Total investido"},
			[]float64{25, 55, 55, 55},
			projectionRows(p),
		)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(190, 7, tr(fmt.Sprintf("Total projetado: %s  |  Rendimento total: %s",
			money.FormatBRLFloat(p.ProjectedTotal), money.FormatBRLFloat(p.TotalYield))), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(190, 8, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(3)
	pdf.SetTextColor(bodyText[0], bodyText[1], bodyText[2])
}

func summaryLines(pdf *gofpdf.Fpdf, tr func(string) string, s *service.DashboardSummary) {
	pdf.SetFont("Arial", "", 10)
	if s.Current == nil {
		pdf.CellFormat(190, 6, tr("Nenhum mês registrado."), "", 1, "L", false, 0, "")
		pdf.Ln(4)
		return
	}
	lines := []string{
		fmt.Sprintf("Mês atual: %s", s.Current.Month),
		fmt.Sprintf("Guardado: %s (variação %s)", money.FormatBRL(s.Current.SavingsBalance), money.FormatBRL(s.SavingsGrowth)),
		fmt.Sprintf("Entrada: %s  |  Saída: %s  |  Saldo do mês: %s",
			money.FormatBRL(s.Current.Income), money.FormatBRL(s.Current.Expenses), money.FormatBRL(s.MonthNet)),
		fmt.Sprintf("Meses registrados: %d", s.RecordCount),
	}
	for _, line := range lines {
		pdf.CellFormat(190, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func table(pdf *gofpdf.Fpdf, tr func(string) string, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			align := "R"
			if i == 0 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func recordRows(records []service.Record) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Month,
			money.FormatBRL(r.Income),
			money.FormatBRL(r.Expenses),
			money.FormatBRL(r.Net()),
			money.FormatBRL(r.SavingsBalance),
		}
	}
	return rows
}

func projectionRows(p *service.Projection) [][]string {
	rows := make([][]string, len(p.Points))
	for i, pt := range p.Points {
		rows[i] = []string{
			fmt.Sprintf("%d", pt.Month),
			money.FormatBRL(decimal.NewFromFloat(pt.Amount)),
			money.FormatBRL(decimal.NewFromFloat(pt.YieldEarned)),
			money.FormatBRL(decimal.NewFromFloat(pt.TotalInvested)),
		}
	}
	return rows
}
