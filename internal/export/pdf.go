package export

import "github.com/go-pdf/fpdf"

// pdfDoc wraps an fpdf document with the font handling shared by every PDF
// renderer. When a Unicode TTF is configured it is registered for the
// regular and bold styles so Vietnamese diacritics render; otherwise the
// built-in Helvetica is used behind a codepage translator.
type pdfDoc struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func newPDFDoc(pdf *fpdf.Fpdf, fontPath string) *pdfDoc {
	d := &pdfDoc{pdf: pdf}
	if fontPath != "" {
		pdf.AddUTF8Font("doc", "", fontPath)
		pdf.AddUTF8Font("doc", "B", fontPath)
		d.family = "doc"
		d.tr = func(s string) string { return s }
	} else {
		d.family = "Helvetica"
		d.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetFont(d.family, "", 11)
	pdf.AddPage()
	return d
}

// newPDF returns an A4 portrait document.
func (e *Exporter) newPDF() *pdfDoc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	return newPDFDoc(pdf, e.fontPath)
}

// newPDFCard returns a fixed-dimension document sized in points, used for
// the label card.
func (e *Exporter) newPDFCard(w, h float64) *pdfDoc {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(20, 20, 20)
	return newPDFDoc(pdf, e.fontPath)
}

func (d *pdfDoc) setFont(style string, size float64) {
	d.pdf.SetFont(d.family, style, size)
}

// center writes a centered line.
func (d *pdfDoc) center(text string, style string, size float64) {
	d.setFont(style, size)
	d.pdf.CellFormat(0, size*0.6, d.tr(text), "", 1, "C", false, 0, "")
}

// heading writes a left-aligned bold section heading.
func (d *pdfDoc) heading(text string) {
	d.setFont("B", 12)
	d.pdf.CellFormat(0, 7, d.tr(text), "", 1, "L", false, 0, "")
}

// line writes a body text line, wrapping as needed.
func (d *pdfDoc) line(text string) {
	d.setFont("", 11)
	d.pdf.MultiCell(0, 6, d.tr(text), "", "L", false)
}

// right writes a right-aligned body line.
func (d *pdfDoc) right(text string) {
	d.setFont("", 11)
	d.pdf.CellFormat(0, 6, d.tr(text), "", 1, "R", false, 0, "")
}

func (d *pdfDoc) gap(h float64) {
	d.pdf.Ln(h)
}

// save writes the document to the artifact path.
func (d *pdfDoc) save(a *Artifact) error {
	return d.pdf.OutputFileAndClose(a.Path)
}
