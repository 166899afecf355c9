package export

import (
	"fmt"
	"os"
	"strings"

	"compliance-service/internal/model"
)

// Label card dimensions in points.
const (
	labelWidth  = 400
	labelHeight = 300
)

// renderLabel produces the compact label template: product name, HS code,
// composition and storage lines resolved from the labeling requirements,
// date placeholders and the issuer identity block.
func (e *Exporter) renderLabel(p *model.Product, issuer Issuer, format Format) (*Artifact, error) {
	switch format {
	case FormatPDF:
		return e.renderLabelPDF(p, issuer)
	case FormatTXT:
		return e.renderLabelTXT(p, issuer)
	default:
		return nil, fmt.Errorf("%w: %s for %s", ErrUnsupportedFormat, format, KindLabel)
	}
}

func (e *Exporter) labelComposition(p *model.Product) string {
	return orElse(p.LabelDetail("Thành phần"), e.fb.Composition)
}

func (e *Exporter) labelStorage(p *model.Product) string {
	return orElse(p.LabelDetail("Hướng dẫn bảo quản"), e.fb.Storage)
}

func (e *Exporter) renderLabelPDF(p *model.Product, issuer Issuer) (*Artifact, error) {
	a, err := e.store.NewArtifact("Nhan", p.Name, FormatPDF)
	if err != nil {
		return nil, err
	}

	d := e.newPDFCard(labelWidth, labelHeight)
	d.pdf.Rect(10, 10, labelWidth-20, labelHeight-20, "D")

	d.center(strings.ToUpper(p.Name), "B", 16)
	d.gap(8)
	d.line("Mã HS: " + p.Code)
	d.line("Thành phần: " + e.labelComposition(p))
	d.gap(4)
	d.line("NSX: .................... HSD: ....................")
	d.gap(8)
	d.heading("Sản xuất bởi:")
	d.line(orElse(issuer.Company, e.fb.Company))
	d.line("Địa chỉ: " + orElse(issuer.Address, e.fb.Address))
	d.line(fmt.Sprintf("MST: %s | ĐT: %s", orElse(issuer.TaxCode, e.fb.TaxCode), orElse(issuer.Phone, e.fb.Phone)))
	d.gap(8)
	d.line("HD Bảo quản: " + e.labelStorage(p))

	if err := d.save(a); err != nil {
		return nil, fmt.Errorf("write label pdf: %w", err)
	}
	return a, nil
}

func (e *Exporter) renderLabelTXT(p *model.Product, issuer Issuer) (*Artifact, error) {
	a, err := e.store.NewArtifact("Nhan", p.Name, FormatTXT)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	rule := strings.Repeat("=", 43)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "        %s\n", strings.ToUpper(p.Name))
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Mã sản phẩm: %s\n", p.Code)
	fmt.Fprintf(&b, "Thành phần: %s\n", e.labelComposition(p))
	fmt.Fprintln(&b, "NSX: DD/MM/YYYY")
	fmt.Fprintln(&b, "HSD: DD/MM/YYYY")
	fmt.Fprintln(&b, "Sản xuất tại:")
	fmt.Fprintln(&b, orElse(issuer.Company, e.fb.Company))
	fmt.Fprintf(&b, "Địa chỉ: %s\n", orElse(issuer.Address, e.fb.Address))
	fmt.Fprintf(&b, "Điện thoại: %s\n", orElse(issuer.Phone, e.fb.Phone))
	fmt.Fprintf(&b, "MST: %s\n", orElse(issuer.TaxCode, e.fb.TaxCode))
	fmt.Fprintf(&b, "Hướng dẫn: %s\n", e.labelStorage(p))
	fmt.Fprintln(&b, rule)

	if err := os.WriteFile(a.Path, []byte(b.String()), 0o644); err != nil {
		return nil, fmt.Errorf("write label txt: %w", err)
	}
	return a, nil
}
