package export

import (
	"fmt"
	"os"
	"strings"

	"compliance-service/internal/model"

	"github.com/fumiama/go-docx"
)

// renderTCCS produces the TCCS standard-specification document (tiêu chuẩn
// cơ sở): issuer header, title block, scope paragraph and the sensory,
// physicochemical and microbiological indicator sections, closed by a
// right-aligned signature block.
func (e *Exporter) renderTCCS(p *model.Product, issuer Issuer, format Format) (*Artifact, error) {
	switch format {
	case FormatPDF:
		return e.renderTCCSPDF(p, issuer)
	case FormatDocx:
		return e.renderTCCSDocx(p, issuer)
	default:
		return nil, fmt.Errorf("%w: %s for %s", ErrUnsupportedFormat, format, KindTCCS)
	}
}

// tccsScope is the templated scope-of-application sentence.
func (e *Exporter) tccsScope(p *model.Product, issuer Issuer) string {
	return fmt.Sprintf("Tiêu chuẩn này áp dụng cho sản phẩm %s do %s sản xuất và kinh doanh.",
		p.Name, orElse(issuer.Company, e.fb.Company))
}

// tccsSensoryLines returns the four fixed sensory line items.
func (e *Exporter) tccsSensoryLines(p *model.Product) []string {
	s := p.SensoryIndicators
	return []string{
		"- Màu sắc: " + orElse(s.Color, e.fb.Sensory),
		"- Mùi: " + orElse(s.Smell, e.fb.Sensory),
		"- Vị: " + orElse(s.Taste, e.fb.Sensory),
		"- Trạng thái: " + orElse(s.Texture, e.fb.Sensory),
	}
}

func (e *Exporter) tccsPhysicalLines(p *model.Product) []string {
	if len(p.PhysicalChemical) == 0 {
		return []string{e.fb.PhysicalSection}
	}
	lines := make([]string, 0, len(p.PhysicalChemical))
	for _, item := range p.PhysicalChemical {
		lines = append(lines, fmt.Sprintf("- %s: %s (%s)", item.Indicator, item.Value, item.Method))
	}
	return lines
}

func (e *Exporter) tccsMicroLines(p *model.Product) []string {
	if len(p.Microbiological) == 0 {
		return []string{e.fb.MicroSection}
	}
	lines := make([]string, 0, len(p.Microbiological))
	for _, item := range p.Microbiological {
		lines = append(lines, fmt.Sprintf("- %s: %s (%s)", item.Indicator, item.Limit, item.Method))
	}
	return lines
}

func (e *Exporter) renderTCCSPDF(p *model.Product, issuer Issuer) (*Artifact, error) {
	a, err := e.store.NewArtifact("TCCS", p.Name, FormatPDF)
	if err != nil {
		return nil, err
	}

	d := e.newPDF()

	// Header
	d.center(strings.ToUpper(orElse(issuer.Company, e.fb.Company)), "B", 14)
	d.center("Địa chỉ: "+orElse(issuer.Address, e.fb.Address), "", 10)
	d.gap(4)
	d.center("-------------------------------------------", "", 10)
	d.gap(4)

	// Title block
	d.center("TIÊU CHUẨN CƠ SỞ", "B", 18)
	d.center(strings.ToUpper(p.Name), "B", 14)
	d.gap(10)

	d.heading("1. PHẠM VI ÁP DỤNG")
	d.line(e.tccsScope(p, issuer))
	d.gap(4)

	d.heading("2. CHỈ TIÊU CẢM QUAN")
	for _, line := range e.tccsSensoryLines(p) {
		d.line(line)
	}
	d.gap(4)

	d.heading("3. CHỈ TIÊU LÝ HÓA")
	for _, line := range e.tccsPhysicalLines(p) {
		d.line(line)
	}
	d.gap(4)

	d.heading("4. CHỈ TIÊU VI SINH")
	for _, line := range e.tccsMicroLines(p) {
		d.line(line)
	}

	// Signature block
	d.gap(20)
	d.right("Đại diện doanh nghiệp: " + orElse(issuer.Representative, e.fb.Representative))
	d.right("Chức vụ: " + orElse(issuer.Role, e.fb.Role))

	if err := d.save(a); err != nil {
		return nil, fmt.Errorf("write TCCS pdf: %w", err)
	}
	return a, nil
}

func (e *Exporter) renderTCCSDocx(p *model.Product, issuer Issuer) (*Artifact, error) {
	a, err := e.store.NewArtifact("TCCS", p.Name, FormatDocx)
	if err != nil {
		return nil, err
	}

	doc := docx.New().WithDefaultTheme()

	// Header
	doc.AddParagraph().Justification("center").
		AddText(strings.ToUpper(orElse(issuer.Company, e.fb.Company))).Size("28").Bold()
	doc.AddParagraph().Justification("center").
		AddText("Địa chỉ: " + orElse(issuer.Address, e.fb.Address))
	doc.AddParagraph().Justification("center").
		AddText("-------------------------------------------")
	doc.AddParagraph()

	// Title block
	doc.AddParagraph().Justification("center").
		AddText("TIÊU CHUẨN CƠ SỞ").Size("36").Bold()
	doc.AddParagraph().Justification("center").
		AddText(strings.ToUpper(p.Name)).Size("28").Bold()
	doc.AddParagraph()

	addSection := func(title string, lines []string) {
		doc.AddParagraph().AddText(title).Size("24").Bold()
		for _, line := range lines {
			doc.AddParagraph().AddText(line)
		}
		doc.AddParagraph()
	}

	addSection("1. PHẠM VI ÁP DỤNG", []string{e.tccsScope(p, issuer)})
	addSection("2. CHỈ TIÊU CẢM QUAN", e.tccsSensoryLines(p))
	addSection("3. CHỈ TIÊU LÝ HÓA", e.tccsPhysicalLines(p))
	addSection("4. CHỈ TIÊU VI SINH", e.tccsMicroLines(p))

	// Signature block
	doc.AddParagraph()
	doc.AddParagraph().Justification("end").
		AddText("Đại diện doanh nghiệp: " + orElse(issuer.Representative, e.fb.Representative))
	doc.AddParagraph().Justification("end").
		AddText("Chức vụ: " + orElse(issuer.Role, e.fb.Role))

	f, err := os.Create(a.Path)
	if err != nil {
		return nil, fmt.Errorf("create TCCS docx: %w", err)
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		return nil, fmt.Errorf("write TCCS docx: %w", err)
	}
	return a, nil
}
