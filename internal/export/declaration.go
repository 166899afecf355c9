package export

import (
	"fmt"
	"os"
	"strings"

	"compliance-service/internal/model"

	"github.com/fumiama/go-docx"
)

// declarationSection is a titled group of lines shared by the docx and pdf
// encodings of the self-declaration dossier.
type declarationSection struct {
	title string
	lines []string
}

// declarationSections assembles the dossier body: organization information
// from the issuer profile, product information and the closing attestation.
func (e *Exporter) declarationSections(p *model.Product, issuer Issuer) []declarationSection {
	company := orElse(issuer.Company, e.fb.Company)
	return []declarationSection{
		{
			title: "I. THÔNG TIN VỀ TỔ CHỨC, CÁ NHÂN TỰ CÔNG BỐ SẢN PHẨM",
			lines: []string{
				"Tên tổ chức/cá nhân: " + company,
				"Mã số thuế: " + orElse(issuer.TaxCode, e.fb.TaxCode),
				"Địa chỉ: " + orElse(issuer.Address, e.fb.Address),
				"Điện thoại: " + orElse(issuer.Phone, e.fb.Phone),
				"Người đại diện: " + orElse(issuer.Representative, e.fb.Representative) +
					" - Chức vụ: " + orElse(issuer.Role, e.fb.Role),
			},
		},
		{
			title: "II. THÔNG TIN VỀ SẢN PHẨM",
			lines: []string{
				"Tên sản phẩm: " + p.Name,
				"Mã HS: " + p.Code,
				"Thành phần: " + orElse(p.LabelDetail("Thành phần"), e.fb.Composition),
			},
		},
		{
			title: "III. CAM KẾT",
			lines: []string{
				fmt.Sprintf("%s cam kết sản phẩm nêu trên phù hợp với quy chuẩn kỹ thuật, "+
					"tiêu chuẩn áp dụng và hoàn toàn chịu trách nhiệm về tính pháp lý "+
					"của hồ sơ công bố này.", company),
			},
		},
	}
}

// renderDeclaration produces the self-declaration dossier (bản tự công bố
// sản phẩm) in the national document layout.
func (e *Exporter) renderDeclaration(p *model.Product, issuer Issuer, format Format) (*Artifact, error) {
	switch format {
	case FormatDocx:
		return e.renderDeclarationDocx(p, issuer)
	case FormatPDF:
		return e.renderDeclarationPDF(p, issuer)
	default:
		return nil, fmt.Errorf("%w: %s for %s", ErrUnsupportedFormat, format, KindDeclaration)
	}
}

func (e *Exporter) renderDeclarationDocx(p *model.Product, issuer Issuer) (*Artifact, error) {
	a, err := e.store.NewArtifact("HoSoCB", p.Name, FormatDocx)
	if err != nil {
		return nil, err
	}

	doc := docx.New().WithDefaultTheme()

	// Jurisdiction header block
	doc.AddParagraph().Justification("center").
		AddText("CỘNG HÒA XÃ HỘI CHỦ NGHĨA VIỆT NAM").Size("26").Bold()
	doc.AddParagraph().Justification("center").
		AddText("Độc lập - Tự do - Hạnh phúc").Size("24").Bold()
	doc.AddParagraph().Justification("center").
		AddText("---------------")
	doc.AddParagraph()

	doc.AddParagraph().Justification("center").
		AddText("BẢN TỰ CÔNG BỐ SẢN PHẨM").Size("32").Bold()
	doc.AddParagraph().Justification("center").
		AddText(strings.ToUpper(p.Name)).Size("26").Bold()
	doc.AddParagraph()

	for _, section := range e.declarationSections(p, issuer) {
		doc.AddParagraph().AddText(section.title).Size("24").Bold()
		for _, line := range section.lines {
			doc.AddParagraph().AddText(line)
		}
		doc.AddParagraph()
	}

	doc.AddParagraph().Justification("end").
		AddText("Đại diện: " + orElse(issuer.Representative, e.fb.Representative))

	f, err := os.Create(a.Path)
	if err != nil {
		return nil, fmt.Errorf("create declaration docx: %w", err)
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		return nil, fmt.Errorf("write declaration docx: %w", err)
	}
	return a, nil
}

func (e *Exporter) renderDeclarationPDF(p *model.Product, issuer Issuer) (*Artifact, error) {
	a, err := e.store.NewArtifact("HoSoCB", p.Name, FormatPDF)
	if err != nil {
		return nil, err
	}

	d := e.newPDF()
	d.center("CỘNG HÒA XÃ HỘI CHỦ NGHĨA VIỆT NAM", "B", 13)
	d.center("Độc lập - Tự do - Hạnh phúc", "B", 12)
	d.center("---------------", "", 10)
	d.gap(8)

	d.center("BẢN TỰ CÔNG BỐ SẢN PHẨM", "B", 16)
	d.center(strings.ToUpper(p.Name), "B", 13)
	d.gap(8)

	for _, section := range e.declarationSections(p, issuer) {
		d.heading(section.title)
		for _, line := range section.lines {
			d.line(line)
		}
		d.gap(4)
	}

	d.gap(12)
	d.right("Đại diện: " + orElse(issuer.Representative, e.fb.Representative))

	if err := d.save(a); err != nil {
		return nil, fmt.Errorf("write declaration pdf: %w", err)
	}
	return a, nil
}
