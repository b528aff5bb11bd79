package render

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"

	"fleet-app-go/internal/domain/fleet"
	"fleet-app-go/internal/report"
)

// The render target is a single tall raster at a fixed logical A4 pixel width
// (96 dpi) with 2x supersampling for legibility. The export pipeline slices it
// into page-height bands at the same aspect ratio.
const (
	PageWidthPx  = 794
	PageHeightPx = 1123
	Scale        = 2

	margin        = 24 * Scale
	headerHeight  = 84 * Scale
	statsHeight   = 96 * Scale
	chartTitleH   = 34 * Scale
	chartHeight   = 300 * Scale
	sectionGap    = 24 * Scale
	tableHeaderH  = 28 * Scale
	tableRowH     = 24 * Scale
	footerHeight  = 48 * Scale
	emptyStateH   = 160 * Scale
	chartFontSize = 9 * Scale
)

var errNoChartData = errors.New("no chart data")

func hasPositiveCategory(rows []report.CategoryRow) bool {
	for _, row := range rows {
		if row.Value > 0 {
			return true
		}
	}
	return false
}

// Data is the already-filtered report input. The renderer draws exactly what
// it is given and never re-widens to the unfiltered collections.
type Data struct {
	TruckLogs   []fleet.TruckLog
	Expenses    []fleet.Expense
	Summary     report.Summary
	GeneratedAt time.Time
}

type faces struct {
	title   font.Face
	section font.Face
	stat    font.Face
	text    font.Face
	small   font.Face
}

// Report composes the full report raster: header, stat cards, the three
// dashboard charts and the full-detail tables for both record kinds.
func Report(data Data) (image.Image, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}

	empty := len(data.TruckLogs) == 0 && len(data.Expenses) == 0

	width := PageWidthPx * Scale
	contentW := width - 2*margin

	height := margin + headerHeight + sectionGap
	if empty {
		height += emptyStateH
	} else {
		height += statsHeight + sectionGap
		if len(data.Summary.Monthly) > 0 {
			height += chartTitleH + chartHeight + sectionGap
		}
		if len(data.Summary.Monthly) > 1 {
			height += chartTitleH + chartHeight + sectionGap
		}
		if hasPositiveCategory(data.Summary.ExpenseByCategory) {
			height += chartTitleH + chartHeight + sectionGap
		}
		height += tableSectionHeight(len(data.TruckLogs))
		height += tableSectionHeight(len(data.Expenses))
	}
	height += footerHeight + margin

	ctx := gg.NewContext(width, height)
	ctx.SetHexColor("#ffffff")
	ctx.Clear()

	y := float64(margin)
	y = drawHeader(ctx, f, data.GeneratedAt, y, contentW)
	y += sectionGap

	if empty {
		drawEmptyState(ctx, f, y, contentW)
		drawFooter(ctx, f, float64(height-margin-footerHeight), contentW)
		return ctx.Image(), nil
	}

	y = drawStatCards(ctx, f, data.Summary, y, contentW)
	y += sectionGap

	if len(data.Summary.Monthly) > 0 {
		img, err := monthlyKmChart(data.Summary.Monthly, contentW, chartHeight)
		if err != nil {
			return nil, fmt.Errorf("monthly km chart: %w", err)
		}
		y = drawChartSection(ctx, f, "Desempenho Mensal (KM Rodados)", img, y)
		y += sectionGap
	}
	if len(data.Summary.Monthly) > 1 {
		img, err := monthlyCostChart(data.Summary.Monthly, contentW, chartHeight)
		if err != nil {
			return nil, fmt.Errorf("monthly cost chart: %w", err)
		}
		y = drawChartSection(ctx, f, "Custos Mensais (Combustível vs. Despesas)", img, y)
		y += sectionGap
	}
	if hasPositiveCategory(data.Summary.ExpenseByCategory) {
		img, err := expensePieChart(data.Summary.ExpenseByCategory, contentW, chartHeight)
		if err != nil {
			return nil, fmt.Errorf("expense pie chart: %w", err)
		}
		y = drawChartSection(ctx, f, "Despesas por Fornecedor", img, y)
		y += sectionGap
	}

	y = drawTruckLogTable(ctx, f, data.TruckLogs, y, contentW)
	y = drawExpenseTable(ctx, f, data.Expenses, y, contentW)

	drawFooter(ctx, f, float64(height-margin-footerHeight), contentW)
	return ctx.Image(), nil
}

func loadFaces() (faces, error) {
	ttf, err := chart.GetDefaultFont()
	if err != nil {
		return faces{}, fmt.Errorf("load font: %w", err)
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(ttf, &truetype.Options{Size: size})
	}
	return faces{
		title:   face(20 * Scale),
		section: face(14 * Scale),
		stat:    face(16 * Scale),
		text:    face(10 * Scale),
		small:   face(8 * Scale),
	}, nil
}

func drawHeader(ctx *gg.Context, f faces, generatedAt time.Time, y float64, contentW int) float64 {
	ctx.SetHexColor("#0f172a")
	ctx.DrawRectangle(float64(margin), y, float64(contentW), float64(headerHeight))
	ctx.Fill()

	ctx.SetHexColor("#ffffff")
	ctx.SetFontFace(f.title)
	ctx.DrawString("Relatório de Performance da Frota", float64(margin+16*Scale), y+float64(34*Scale))

	ctx.SetFontFace(f.text)
	ctx.SetHexColor("#94a3b8")
	ctx.DrawString("Análise Consolidada de Operações e Custos", float64(margin+16*Scale), y+float64(56*Scale))

	dateLabel := "Data de Emissão: " + generatedAt.Format("2006-01-02")
	w, _ := ctx.MeasureString(dateLabel)
	ctx.DrawString(dateLabel, float64(margin+contentW-16*Scale)-w, y+float64(56*Scale))

	return y + float64(headerHeight)
}

func drawEmptyState(ctx *gg.Context, f faces, y float64, contentW int) {
	ctx.SetHexColor("#f1f5f9")
	ctx.DrawRectangle(float64(margin), y, float64(contentW), float64(emptyStateH))
	ctx.Fill()

	ctx.SetHexColor("#334155")
	ctx.SetFontFace(f.section)
	msg := "Nenhum dado encontrado para os filtros aplicados"
	w, _ := ctx.MeasureString(msg)
	ctx.DrawString(msg, float64(margin)+(float64(contentW)-w)/2, y+float64(emptyStateH)/2)
}

func drawStatCards(ctx *gg.Context, f faces, summary report.Summary, y float64, contentW int) float64 {
	cards := []struct {
		label string
		value string
	}{
		{"KM Rodados (Total)", fmt.Sprintf("%.0f km", summary.TotalKm)},
		{"Custo de Combustível", formatBRL(summary.TotalFuelCost)},
		{"Despesas (Total)", formatBRL(summary.TotalExpenses)},
		{"Média Geral de Consumo", fmt.Sprintf("%.2f km/l", summary.OverallAvgKmL)},
	}

	gap := 12 * Scale
	cardW := (contentW - gap*(len(cards)-1)) / len(cards)
	for i, card := range cards {
		x := float64(margin + i*(cardW+gap))
		ctx.SetHexColor("#f1f5f9")
		ctx.DrawRectangle(x, y, float64(cardW), float64(statsHeight))
		ctx.Fill()

		ctx.SetFontFace(f.small)
		ctx.SetHexColor("#64748b")
		ctx.DrawString(fitString(ctx, card.label, float64(cardW-16*Scale)), x+float64(8*Scale), y+float64(24*Scale))

		ctx.SetFontFace(f.stat)
		ctx.SetHexColor("#0f172a")
		ctx.DrawString(fitString(ctx, card.value, float64(cardW-16*Scale)), x+float64(8*Scale), y+float64(60*Scale))
	}

	return y + float64(statsHeight)
}

func drawChartSection(ctx *gg.Context, f faces, title string, img image.Image, y float64) float64 {
	ctx.SetFontFace(f.section)
	ctx.SetHexColor("#0f172a")
	ctx.DrawString(title, float64(margin), y+float64(22*Scale))
	y += float64(chartTitleH)

	ctx.DrawImage(img, margin, int(y))
	return y + float64(chartHeight)
}

func tableSectionHeight(rows int) int {
	return chartTitleH + tableHeaderH + rows*tableRowH + sectionGap
}

type tableColumn struct {
	label string
	frac  float64
}

func drawTruckLogTable(ctx *gg.Context, f faces, logs []fleet.TruckLog, y float64, contentW int) float64 {
	columns := []tableColumn{
		{"Mês", 0.09},
		{"Modelo", 0.16},
		{"Placa", 0.11},
		{"KM Rodados", 0.11},
		{"Combustível", 0.12},
		{"Km/L", 0.08},
		{"Rota", 0.20},
		{"Posto", 0.13},
	}

	rows := make([][]string, 0, len(logs))
	for _, log := range logs {
		liters := log.LitersConsumed()
		kmL := 0.0
		if liters > 0 {
			kmL = log.KmDriven() / liters
		}
		rows = append(rows, []string{
			log.Month,
			log.TruckModel,
			log.LicensePlate,
			fmt.Sprintf("%.0f", log.KmDriven()),
			formatBRL(log.TotalFuelCost),
			fmt.Sprintf("%.2f", kmL),
			log.Route,
			log.GasStation,
		})
	}

	return drawTable(ctx, f, "Detalhes das Viagens", columns, rows, y, contentW)
}

func drawExpenseTable(ctx *gg.Context, f faces, expenses []fleet.Expense, y float64, contentW int) float64 {
	columns := []tableColumn{
		{"Mês", 0.12},
		{"Fornecedor", 0.28},
		{"Descrição", 0.42},
		{"Custo", 0.18},
	}

	rows := make([][]string, 0, len(expenses))
	for _, expense := range expenses {
		rows = append(rows, []string{
			expense.Month,
			expense.Supplier,
			expense.Description,
			formatBRL(expense.Cost),
		})
	}

	return drawTable(ctx, f, "Detalhes das Despesas", columns, rows, y, contentW)
}

func drawTable(ctx *gg.Context, f faces, title string, columns []tableColumn, rows [][]string, y float64, contentW int) float64 {
	ctx.SetFontFace(f.section)
	ctx.SetHexColor("#0f172a")
	ctx.DrawString(title, float64(margin), y+float64(22*Scale))
	y += float64(chartTitleH)

	cellPad := float64(6 * Scale)

	ctx.SetHexColor("#e2e8f0")
	ctx.DrawRectangle(float64(margin), y, float64(contentW), float64(tableHeaderH))
	ctx.Fill()

	ctx.SetFontFace(f.small)
	ctx.SetHexColor("#334155")
	x := float64(margin)
	for _, col := range columns {
		colW := float64(contentW) * col.frac
		ctx.DrawString(fitString(ctx, col.label, colW-2*cellPad), x+cellPad, y+float64(19*Scale))
		x += colW
	}
	y += float64(tableHeaderH)

	ctx.SetFontFace(f.text)
	for i, row := range rows {
		if i%2 == 1 {
			ctx.SetHexColor("#f8fafc")
			ctx.DrawRectangle(float64(margin), y, float64(contentW), float64(tableRowH))
			ctx.Fill()
		}
		ctx.SetHexColor("#0f172a")
		x = float64(margin)
		for j, col := range columns {
			colW := float64(contentW) * col.frac
			if j < len(row) {
				ctx.DrawString(fitString(ctx, row[j], colW-2*cellPad), x+cellPad, y+float64(16*Scale))
			}
			x += colW
		}
		y += float64(tableRowH)
	}

	return y + float64(sectionGap)
}

func drawFooter(ctx *gg.Context, f faces, y float64, contentW int) {
	ctx.SetHexColor("#cbd5e1")
	ctx.DrawLine(float64(margin), y, float64(margin+contentW), y)
	ctx.SetLineWidth(Scale)
	ctx.Stroke()

	ctx.SetFontFace(f.small)
	ctx.SetHexColor("#64748b")
	msg := "Relatório gerado pelo Sistema de Gestão de Frotas"
	w, _ := ctx.MeasureString(msg)
	ctx.DrawString(msg, float64(margin)+(float64(contentW)-w)/2, y+float64(24*Scale))
}

// fitString truncates with an ellipsis when the string exceeds maxW at the
// current font face.
func fitString(ctx *gg.Context, s string, maxW float64) string {
	if w, _ := ctx.MeasureString(s); w <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if w, _ := ctx.MeasureString(candidate); w <= maxW {
			return candidate
		}
	}
	return "…"
}

// formatBRL renders a pt-BR currency amount (dot thousands, comma decimals).
func formatBRL(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	intPart, decPart := s[:len(s)-3], s[len(s)-2:]

	var grouped []byte
	for i, digit := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, digit)
	}

	result := "R$ " + string(grouped) + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}
