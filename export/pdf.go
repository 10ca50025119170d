package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// The core fonts are cp1252, which lacks these letters.
var turkishFallback = strings.NewReplacer(
	"ğ", "g", "Ğ", "G",
	"ş", "s", "Ş", "S",
	"ı", "i", "İ", "I",
)

const (
	rowHeight = 6.0
	fontSize  = 8.5
)

// WritePDF writes s as an A4 landscape table, repeating the header row on
// every page.
func WritePDF(w io.Writer, s Sheet) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, 12)
	pdf.AliasNbPages("{nb}")

	cp := pdf.UnicodeTranslatorFromDescriptor("")
	tr := func(text string) string {
		return cp(turkishFallback.Replace(text))
	}

	_, pageH := pdf.GetPageSize()
	_, _, _, marginB := pdf.GetMargins()
	bottom := pageH - marginB

	newPage := func() {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, tr(s.Title), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 7, fmt.Sprintf("Sayfa %d / {nb}", pdf.PageNo()), "", 1, "R", false, 0, "")

		meta := s.GeneratedAt.Format("02.01.2006 15:04")
		if s.GeneratedBy != "" {
			meta += " - " + s.GeneratedBy
		}
		if s.Filter != "" {
			meta += " - " + s.Filter
		}
		meta += fmt.Sprintf(" - %d kayıt", len(s.Voters))
		pdf.CellFormat(0, 5, tr(meta), "", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFillColor(230, 230, 230)
		pdf.SetFont("Helvetica", "B", fontSize)
		for _, c := range columns {
			pdf.CellFormat(c.width, rowHeight, tr(c.header), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", fontSize)
	}

	newPage()
	for i := range s.Voters {
		if pdf.GetY()+rowHeight > bottom {
			newPage()
		}
		v := &s.Voters[i]
		for _, c := range columns {
			text := fit(pdf, tr(c.value(v)), c.width-2)
			pdf.CellFormat(c.width, rowHeight, text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// fit shortens text until it renders within width.
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	b := []byte(text)
	for len(b) > 0 && pdf.GetStringWidth(string(b)+"..") > width {
		b = b[:len(b)-1]
	}
	return string(b) + ".."
}
