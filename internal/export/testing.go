package export

import (
	"encoding/json"
	"fmt"
	"os"

	"compliance-service/internal/model"

	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// vn prints VND amounts with Vietnamese thousands separators.
var vn = message.NewPrinter(language.Vietnamese)

func formatVND(amount int64) string {
	return vn.Sprintf("%d", amount)
}

// testingRow is one numbered line of the testing request form.
type testingRow struct {
	Seq       int    `csv:"stt" json:"stt"`
	Indicator string `csv:"chi_tieu" json:"indicator"`
	Method    string `csv:"phuong_phap" json:"method"`
	Cost      int64  `csv:"chi_phi_vnd" json:"cost"`
	Category  string `csv:"nhom" json:"category"`
}

func testingRows(p *model.Product) []testingRow {
	rows := make([]testingRow, 0, len(p.TestingRequirements))
	for _, r := range p.TestingRequirements {
		rows = append(rows, testingRow{
			Seq:       r.Seq,
			Indicator: r.Indicator,
			Method:    r.Method,
			Cost:      r.Cost,
			Category:  r.Category,
		})
	}
	return rows
}

// renderTestingForm produces the testing request (phiếu yêu cầu kiểm
// nghiệm): the customer block, one numbered line per required test and the
// total estimated cost, always recomputed from the effective record.
func (e *Exporter) renderTestingForm(p *model.Product, issuer Issuer, format Format) (*Artifact, error) {
	switch format {
	case FormatXLSX:
		return e.renderTestingXLSX(p, issuer)
	case FormatCSV:
		return e.renderTestingCSV(p)
	case FormatJSON:
		return e.renderTestingJSON(p, issuer)
	case FormatPDF:
		return e.renderTestingPDF(p, issuer)
	default:
		return nil, fmt.Errorf("%w: %s for %s", ErrUnsupportedFormat, format, KindTesting)
	}
}

func (e *Exporter) renderTestingXLSX(p *model.Product, issuer Issuer) (*Artifact, error) {
	a, err := e.store.NewArtifact("PhieuKN", p.Name, FormatXLSX)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	f.SetCellValue(sheet, "A1", "PHIẾU YÊU CẦU KIỂM NGHIỆM")
	f.SetCellValue(sheet, "A2", "Khách hàng")
	f.SetCellValue(sheet, "B2", orElse(issuer.Company, e.fb.Company))
	f.SetCellValue(sheet, "A3", "Địa chỉ")
	f.SetCellValue(sheet, "B3", orElse(issuer.Address, e.fb.Address))
	f.SetCellValue(sheet, "A4", "Sản phẩm")
	f.SetCellValue(sheet, "B4", p.Name)
	f.SetCellValue(sheet, "A5", "Mã HS")
	f.SetCellValue(sheet, "B5", p.Code)

	headers := []string{"STT", "Chỉ tiêu", "Phương pháp", "Chi phí (VNĐ)", "Nhóm"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 7)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	row := 8
	for _, r := range p.TestingRequirements {
		values := []interface{}{r.Seq, r.Indicator, r.Method, r.Cost, r.Category}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	totalLabel, err := excelize.CoordinatesToCellName(3, row+1)
	if err != nil {
		return nil, err
	}
	totalCell, err := excelize.CoordinatesToCellName(4, row+1)
	if err != nil {
		return nil, err
	}
	f.SetCellValue(sheet, totalLabel, "TỔNG CHI PHÍ ƯỚC TÍNH")
	f.SetCellValue(sheet, totalCell, p.TotalTestingCost())

	f.SetColWidth(sheet, "B", "C", 40)
	f.SetColWidth(sheet, "D", "E", 18)

	if err := f.SaveAs(a.Path); err != nil {
		return nil, fmt.Errorf("write testing xlsx: %w", err)
	}
	return a, nil
}

func (e *Exporter) renderTestingCSV(p *model.Product) (*Artifact, error) {
	a, err := e.store.NewArtifact("PhieuKN", p.Name, FormatCSV)
	if err != nil {
		return nil, err
	}

	data, err := csvutil.Marshal(testingRows(p))
	if err != nil {
		return nil, fmt.Errorf("marshal testing csv: %w", err)
	}
	if err := os.WriteFile(a.Path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write testing csv: %w", err)
	}
	return a, nil
}

func (e *Exporter) renderTestingJSON(p *model.Product, issuer Issuer) (*Artifact, error) {
	a, err := e.store.NewArtifact("PhieuKN", p.Name, FormatJSON)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Company      string       `json:"company"`
		Address      string       `json:"address"`
		Phone        string       `json:"phone"`
		ProductName  string       `json:"product_name"`
		ProductCode  string       `json:"product_code"`
		Requirements []testingRow `json:"requirements"`
		TotalCost    int64        `json:"total_cost"`
	}{
		Company:      orElse(issuer.Company, e.fb.Company),
		Address:      orElse(issuer.Address, e.fb.Address),
		Phone:        orElse(issuer.Phone, e.fb.Phone),
		ProductName:  p.Name,
		ProductCode:  p.Code,
		Requirements: testingRows(p),
		TotalCost:    p.TotalTestingCost(),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal testing json: %w", err)
	}
	if err := os.WriteFile(a.Path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write testing json: %w", err)
	}
	return a, nil
}

func (e *Exporter) renderTestingPDF(p *model.Product, issuer Issuer) (*Artifact, error) {
	a, err := e.store.NewArtifact("PhieuKN", p.Name, FormatPDF)
	if err != nil {
		return nil, err
	}

	d := e.newPDF()
	d.center("PHIẾU YÊU CẦU KIỂM NGHIỆM", "B", 14)
	d.gap(6)
	d.line("Khách hàng: " + orElse(issuer.Company, e.fb.Company))
	d.line("Địa chỉ: " + orElse(issuer.Address, e.fb.Address))
	d.line("Sản phẩm: " + p.Name)
	d.line("Mã HS: " + p.Code)
	d.gap(4)

	d.heading("Danh sách chỉ tiêu yêu cầu:")
	for _, r := range p.TestingRequirements {
		d.line(fmt.Sprintf("%d. %s - %s - Chi phí: %s VNĐ", r.Seq, r.Indicator, r.Method, formatVND(r.Cost)))
	}
	d.gap(4)

	d.heading(fmt.Sprintf("TỔNG CHI PHÍ ƯỚC TÍNH: %s VNĐ", formatVND(p.TotalTestingCost())))

	if err := d.save(a); err != nil {
		return nil, fmt.Errorf("write testing pdf: %w", err)
	}
	return a, nil
}
