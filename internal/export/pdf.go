package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes a summary report: reactions, equations, peak values,
// the diagram expressions and any attached images
func WritePDF(r Report, w io.Writer) error {
	pdf := report(r)
	return pdf.Output(w)
}

// SavePDF writes the report to path, creating its directory
func SavePDF(r Report, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	pdf := report(r)
	return pdf.OutputFileAndClose(path)
}

func report(r Report) *gofpdf.Fpdf {
	title := r.Title
	if title == "" {
		title = "Beam Analysis Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Span: %.3f m", r.Length))
	pdf.Ln(6)
	if r.Combination != "" {
		pdf.Cell(0, 6, tr("Load combination: "+r.Combination))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Reactions")
	widths := []float64{25, 30, 30, 30, 30, 30}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Label", "Support", "x (m)", "Rx (kN)", "Ry (kN)", "M (kNm)"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, rc := range r.Reactions {
		cells := []string{
			tr(rc.Label),
			rc.Support,
			fmt.Sprintf("%.3f", rc.X),
			fmt.Sprintf("%.3f", rc.Rx),
			fmt.Sprintf("%.3f", rc.Ry),
			fmt.Sprintf("%.3f", rc.M),
		}
		for i, c := range cells {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	section(pdf, "Peak values")
	p := r.Peaks
	lines := []string{
		fmt.Sprintf("Max shear   %10.3f kN   at x = %.3f m", p.MaxShear.Value, p.MaxShear.X),
		fmt.Sprintf("Min shear   %10.3f kN   at x = %.3f m", p.MinShear.Value, p.MinShear.X),
		fmt.Sprintf("Max moment  %10.3f kNm  at x = %.3f m", p.MaxMoment.Value, p.MaxMoment.X),
		fmt.Sprintf("Min moment  %10.3f kNm  at x = %.3f m", p.MinMoment.Value, p.MinMoment.X),
	}
	pdf.SetFont("Courier", "", 10)
	for _, l := range lines {
		pdf.Cell(0, 5, l)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	section(pdf, "Equilibrium equations")
	pdf.SetFont("Courier", "", 9)
	pdf.MultiCell(0, 5, tr(strings.Join(r.Equations, "\n")), "", "L", false)
	pdf.Ln(4)

	section(pdf, "Diagram expressions")
	pdf.SetFont("Courier", "", 9)
	pdf.MultiCell(0, 5, tr("V(x) = "+r.ShearExpr), "", "L", false)
	pdf.MultiCell(0, 5, tr("M(x) = "+r.MomentExpr), "", "L", false)

	for _, img := range r.Images {
		pdf.AddPage()
		pdf.ImageOptions(img, 10, 20, 190, 0, false, gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}
	return pdf
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
}
