package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/rotisserie/eris"
)

// Generator: интерфейс (удобно мокать в тестах)
type Generator interface {
	WriteLeadsReport(w io.Writer, data ReportData) error
}

// ReportGenerator renders the filtered lead table as a landscape A4 report.
type ReportGenerator struct {
	FontPath string // TTF с кириллицей/латиницей; пусто: встроенный Helvetica
	fontName string
}

type Metric struct {
	Title string
	Value string
}

type ReportData struct {
	Title       string
	Subtitle    string
	Metrics     []Metric
	Header      []string
	Rows        [][]string
	GeneratedAt time.Time
	EmptyText   string
}

// относительные ширины колонок (Name, Email, Phone, Company, Source, Status, Priority, Date)
var columnWeights = []float64{3, 4, 2.5, 3, 1.8, 1.8, 1.6, 1.8}

const (
	pageMargin = 12.0
	rowHeight  = 7.0
)

func NewReportGenerator(fontPath string) *ReportGenerator {
	g := &ReportGenerator{FontPath: fontPath, fontName: "Helvetica"}
	if fontPath != "" {
		g.fontName = "DejaVu"
	}
	return g
}

func (g *ReportGenerator) WriteLeadsReport(w io.Writer, data ReportData) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(data.Title, true)
	pdf.SetAuthor("Impactio One", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	tr := g.addFont(pdf)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont(g.fontName, "", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 9, tr(data.Title), "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	sub := data.Subtitle
	if !data.GeneratedAt.IsZero() {
		sub = fmt.Sprintf("%s  %s", sub, data.GeneratedAt.Format("02.01.2006 15:04"))
	}
	pdf.CellFormat(0, 6, tr(sub), "", 1, "L", false, 0, "")
	g.hr(pdf)

	// ===== Метрики
	if len(data.Metrics) > 0 {
		cw := g.contentWidth(pdf) / float64(len(data.Metrics))
		pdf.SetFont(g.fontName, "", 9)
		for _, m := range data.Metrics {
			pdf.CellFormat(cw, 5, tr(m.Title), "", 0, "L", false, 0, "")
		}
		pdf.Ln(5)
		pdf.SetFont(g.fontName, "B", 14)
		for _, m := range data.Metrics {
			pdf.CellFormat(cw, 8, tr(m.Value), "", 0, "L", false, 0, "")
		}
		pdf.Ln(10)
	}

	// ===== Таблица
	widths := g.columnWidths(pdf, len(data.Header))
	g.tableHeader(pdf, data.Header, widths, tr)
	pdf.SetFont(g.fontName, "", 8)
	for _, row := range data.Rows {
		if pdf.GetY()+rowHeight > g.pageBottom(pdf) {
			pdf.AddPage()
			g.tableHeader(pdf, data.Header, widths, tr)
			pdf.SetFont(g.fontName, "", 8)
		}
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			pdf.CellFormat(widths[i], rowHeight, g.fit(pdf, tr(cell), widths[i]), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(data.Rows) == 0 && data.EmptyText != "" {
		pdf.Ln(4)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 8, tr(data.EmptyText), "", 1, "C", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return eris.Wrap(err, "pdf: output")
	}
	return nil
}

// ===== helpers =====

func (g *ReportGenerator) addFont(pdf *gofpdf.Fpdf) func(string) string {
	if g.FontPath != "" {
		// AddUTF8Font принимает путь до TTF
		pdf.AddUTF8Font(g.fontName, "", g.FontPath)
		pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
		return func(s string) string { return s }
	}
	// встроенные шрифты: cp1252
	return pdf.UnicodeTranslatorFromDescriptor("")
}

func (g *ReportGenerator) tableHeader(pdf *gofpdf.Fpdf, header []string, widths []float64, tr func(string) string) {
	pdf.SetFont(g.fontName, "B", 9)
	pdf.SetFillColor(230, 233, 240)
	for i, h := range header {
		if i >= len(widths) {
			break
		}
		pdf.CellFormat(widths[i], rowHeight, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func (g *ReportGenerator) columnWidths(pdf *gofpdf.Fpdf, n int) []float64 {
	weights := columnWeights
	if n != len(columnWeights) {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = g.contentWidth(pdf) * w / total
	}
	return out
}

func (g *ReportGenerator) contentWidth(pdf *gofpdf.Fpdf) float64 {
	w, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	return w - left - right
}

func (g *ReportGenerator) pageBottom(pdf *gofpdf.Fpdf) float64 {
	_, h := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	return h - bottom
}

// fit обрезает текст под ширину колонки.
func (g *ReportGenerator) fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	const pad = 2.0
	if pdf.GetStringWidth(s) <= width-pad {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width-pad {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	left, _, _, _ := pdf.GetMargins()
	pdf.SetLineWidth(0.2)
	pdf.Line(left, y, left+g.contentWidth(pdf), y)
	pdf.SetY(y + 3)
}
