package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderProductivityPDF lays out the report as a paginated document:
// header, system summary, type distribution, monthly bar chart,
// per-user sections and the recent daily production table, with a
// page-numbered footer.
func RenderProductivityPDF(report SystemReport, institution string, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")

	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 10, tr("Relatório de Produtividade"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, tr(institution), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr("Gerado em "+now.Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	writeSummarySection(pdf, tr, report)
	writeTypeSection(pdf, tr, report.DocumentsByType)
	writeMonthlyChart(pdf, tr, report.MonthlyTrends)
	writeUserSections(pdf, tr, report.UserProductivity)
	writeDailyTable(pdf, tr, report.DailyProduction)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func writeSummarySection(pdf *gofpdf.Fpdf, tr func(string) string, report SystemReport) {
	writeSectionTitle(pdf, tr, "Resumo do Sistema")

	rows := [][2]string{
		{"Total de documentos", fmt.Sprintf("%d", report.TotalDocuments)},
		{"Concluídos", fmt.Sprintf("%d", report.CompletedDocuments)},
		{"Em andamento", fmt.Sprintf("%d", report.InProgressDocuments)},
		{"Vencidos", fmt.Sprintf("%d", report.OverdueDocuments)},
		{"Taxa de conclusão", fmt.Sprintf("%.1f%%", report.CompletionRate)},
		{"Tempo médio de conclusão", fmt.Sprintf("%.1f dias", report.AverageCompletionTime)},
	}

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(70, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetTextColor(33, 37, 41)
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeTypeSection(pdf *gofpdf.Fpdf, tr func(string) string, byType DocumentsByType) {
	writeSectionTitle(pdf, tr, "Distribuição por Tipo")

	rows := [][2]string{
		{"Certidões", fmt.Sprintf("%d", byType.Certidoes)},
		{"Relatórios", fmt.Sprintf("%d", byType.Relatorios)},
		{"Ofícios", fmt.Sprintf("%d", byType.Oficios)},
		{"Extinções", fmt.Sprintf("%d", byType.Extincoes)},
	}

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(70, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetTextColor(33, 37, 41)
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

// writeMonthlyChart draws created/completed pairs as a simple bar chart
// over the six-month trend window.
func writeMonthlyChart(pdf *gofpdf.Fpdf, tr func(string) string, trends []MonthlyTrend) {
	writeSectionTitle(pdf, tr, "Produção Mensal")

	maxVal := 1
	for _, t := range trends {
		if t.Created > maxVal {
			maxVal = t.Created
		}
		if t.Completed > maxVal {
			maxVal = t.Completed
		}
	}

	const chartHeight = 40.0
	const barWidth = 10.0
	const groupGap = 8.0

	baseY := pdf.GetY() + chartHeight
	x := 20.0

	for _, t := range trends {
		createdH := chartHeight * float64(t.Created) / float64(maxVal)
		completedH := chartHeight * float64(t.Completed) / float64(maxVal)

		pdf.SetFillColor(66, 133, 244)
		pdf.Rect(x, baseY-createdH, barWidth, createdH, "F")

		pdf.SetFillColor(52, 168, 83)
		pdf.Rect(x+barWidth+1, baseY-completedH, barWidth, completedH, "F")

		pdf.SetFont("Arial", "", 7)
		pdf.SetTextColor(100, 100, 100)
		pdf.SetXY(x, baseY+1)
		pdf.CellFormat(barWidth*2+1, 4, t.Month, "", 0, "C", false, 0, "")

		x += barWidth*2 + 1 + groupGap
	}

	pdf.SetY(baseY + 7)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(66, 133, 244)
	pdf.CellFormat(30, 5, tr("criados"), "", 0, "L", false, 0, "")
	pdf.SetTextColor(52, 168, 83)
	pdf.CellFormat(30, 5, tr("concluídos"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func writeUserSections(pdf *gofpdf.Fpdf, tr func(string) string, users []UserProductivity) {
	writeSectionTitle(pdf, tr, "Produtividade por Servidor")

	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(33, 37, 41)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(60, 7, tr("Servidor"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, tr("Total"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, tr("Concluídos"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, tr("Vencidos"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, tr("Taxa"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(0, 7, tr("Tempo médio"), "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, u := range users {
		pdf.CellFormat(60, 6, tr(u.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", u.TotalDocuments), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", u.CompletedDocuments), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", u.OverdueDocuments), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.1f%%", u.CompletionRate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%.1f dias", u.AverageCompletionTime), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
}

// writeDailyTable lists the most recent days of the 30-day series,
// newest first.
func writeDailyTable(pdf *gofpdf.Fpdf, tr func(string) string, daily []DailyProduction) {
	writeSectionTitle(pdf, tr, "Produção Diária Recente")

	const maxRows = 10
	start := len(daily) - maxRows
	if start < 0 {
		start = 0
	}
	recent := daily[start:]

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(40, 7, tr("Data"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, tr("Criados"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, tr("Concluídos"), "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for i := len(recent) - 1; i >= 0; i-- {
		entry := recent[i]
		pdf.CellFormat(40, 6, entry.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", entry.Created), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", entry.Completed), "1", 1, "C", false, 0, "")
	}
}
