package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RGB is a color triple for PDF styling.
type RGB struct{ R, G, B int }

// Report color palette.
var (
	ColorGreen     = RGB{40, 84, 48}   // organization green
	ColorEarth     = RGB{139, 90, 43}  // earth tone used for credit reports
	ColorGreenTint = RGB{245, 247, 245}
	ColorEarthTint = RGB{252, 248, 243}
	colorGray      = RGB{60, 60, 60}
	colorLightGray = RGB{150, 150, 150}
)

// PDFOptions configures a single-table report document.
type PDFOptions struct {
	OrgName     string
	Title       string
	GeneratedAt time.Time
	Landscape   bool
	// Summary lines are printed between the title block and the table.
	// They render even when the table is empty.
	Summary    []string
	HeadFill   RGB
	AltRowFill RGB
	// FooterSuffix, when set, is appended to the "Page X of Y" footer.
	FooterSuffix string
}

// PDF builds a paginated report document: title block, summary block,
// striped table, and a "Page X of Y" footer on every page. An empty table
// still yields a valid document with the title and summary blocks.
func PDF(t Table, opts PDFOptions) ([]byte, error) {
	orientation := "P"
	if opts.Landscape {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	setFooter(pdf, opts.FooterSuffix)
	pdf.AddPage()

	writeTitleBlock(pdf, opts.OrgName, opts.Title, opts.GeneratedAt)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(colorGray.R, colorGray.G, colorGray.B)
	for _, line := range opts.Summary {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	writeTable(pdf, t, opts.HeadFill, opts.AltRowFill)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FullReportSection is one titled table section of the complete report.
type FullReportSection struct {
	Title      string
	TitleColor RGB
	HeadFill   RGB
	Table      Table
}

// FullReportOptions configures the complete business report document.
type FullReportOptions struct {
	OrgName      string
	Title        string
	GeneratedAt  time.Time
	SummaryTitle string
	SummaryLines []string
	Sections     []FullReportSection
}

// FullReportPDF builds the complete business report: a title page with an
// executive summary, then one section per table, each starting on a new page.
func FullReportPDF(opts FullReportOptions) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	setFooter(pdf, opts.OrgName)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()

	pdf.SetY(55)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(ColorGreen.R, ColorGreen.G, ColorGreen.B)
	pdf.CellFormat(pageW-20, 12, opts.OrgName, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 18)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(pageW-20, 10, opts.Title, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	generated := fmt.Sprintf("Generated: %s", opts.GeneratedAt.Format("January 02, 2006"))
	pdf.CellFormat(pageW-20, 8, generated, "", 1, "C", false, 0, "")

	pdf.SetY(115)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(ColorGreen.R, ColorGreen.G, ColorGreen.B)
	pdf.Cell(0, 8, opts.SummaryTitle)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(colorGray.R, colorGray.G, colorGray.B)
	for _, line := range opts.SummaryLines {
		pdf.Cell(0, 6, line)
		pdf.Ln(9)
	}

	for _, section := range opts.Sections {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(section.TitleColor.R, section.TitleColor.G, section.TitleColor.B)
		pdf.Cell(0, 9, section.Title)
		pdf.Ln(13)
		writeTable(pdf, section.Table, section.HeadFill, ColorGreenTint)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setFooter(pdf *gofpdf.Fpdf, suffix string) {
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(colorLightGray.R, colorLightGray.G, colorLightGray.B)
		label := fmt.Sprintf("Page %d of {nb}", pdf.PageNo())
		if suffix != "" {
			label += " | " + suffix
		}
		pdf.CellFormat(0, 10, label, "", 0, "C", false, 0, "")
	})
}

func writeTitleBlock(pdf *gofpdf.Fpdf, orgName, title string, generatedAt time.Time) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(ColorGreen.R, ColorGreen.G, ColorGreen.B)
	pdf.Cell(0, 10, orgName)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(colorGray.R, colorGray.G, colorGray.B)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format("January 02, 2006 15:04")))
	pdf.Ln(12)
}

func writeTable(pdf *gofpdf.Fpdf, t Table, headFill, altRowFill RGB) {
	if len(t.Headers) == 0 {
		return
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(t.Headers))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(headFill.R, headFill.G, headFill.B)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range t.Headers {
		pdf.CellFormat(colW, 8, h, "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(colorGray.R, colorGray.G, colorGray.B)
	pdf.SetFillColor(altRowFill.R, altRowFill.G, altRowFill.B)
	for i, row := range t.Rows {
		fill := i%2 == 1
		for _, field := range row {
			pdf.CellFormat(colW, 7, field, "", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}
}
