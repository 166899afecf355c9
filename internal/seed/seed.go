// Package seed populates an empty catalog with reference products so the
// lookup and export flows work out of the box.
package seed

import (
	"fmt"

	"compliance-service/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run inserts the sample products when the catalog is empty. Re-running
// against a populated catalog is a no-op.
func Run(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := SampleProducts()
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	log.Info("Seeded product catalog", zap.Int("count", len(products)))
	return nil
}

// SampleProducts returns the reference catalog entries.
func SampleProducts() []model.Product {
	return []model.Product{
		{
			Name:     "Cà phê bột - Rang xay nguyên chất",
			Code:     "0901.21.20",
			Category: "Chương 09 > 0901 > Cà phê đã rang, chưa khử caffeine > Đã xay",
			Path:     "VNTR > BIỂU THUẾ > CHƯƠNG 09 > 0901",
			SensoryIndicators: model.SensoryIndicators{
				Color:   "Nâu đậm đặc trưng của cà phê rang",
				Smell:   "Mùi cà phê rang tự nhiên, thơm nồng, không mùi lạ",
				Taste:   "Đắng dịu đặc trưng, hậu vị ngọt, không chất bảo quản",
				Texture: "Bột mịn, tơi xốp, không vón cục",
			},
			PhysicalChemical: []model.QualityIndicator{
				{Indicator: "Độ ẩm", Value: "≤ 5.0%", Method: "TCVN 6722-1:2000"},
				{Indicator: "Hàm lượng Caffeine", Value: "1.0 – 2.5%", Method: "AOAC 976.13"},
				{Indicator: "Tro tổng số", Value: "≤ 5.0%", Method: "TCVN 6722-2:2000"},
				{Indicator: "Chất hòa tan", Value: "≥ 25%", Method: "TCVN 7538:2005"},
			},
			Microbiological: []model.LimitIndicator{
				{Indicator: "Tổng số vi khuẩn hiếu khí", Limit: "≤ 10⁵ CFU/g", Method: "TCVN 4884:2005"},
				{Indicator: "Coliforms", Limit: "≤ 10² CFU/g", Method: "TCVN 6846:2008"},
				{Indicator: "E.coli", Limit: "Không phát hiện trong 1g", Method: "TCVN 6846:2008"},
				{Indicator: "Salmonella", Limit: "Không phát hiện/25g", Method: "TCVN 4829:2005"},
				{Indicator: "Nấm men, nấm mốc", Limit: "≤ 10² CFU/g", Method: "TCVN 8275:2010"},
			},
			HeavyMetals: []model.LimitIndicator{
				{Indicator: "Chì (Pb)", Limit: "≤ 0.2 mg/kg", Method: "AOAC 999.10"},
				{Indicator: "Cadimi (Cd)", Limit: "≤ 0.1 mg/kg", Method: "AOAC 999.10"},
				{Indicator: "Asen (As)", Limit: "≤ 0.2 mg/kg", Method: "AOAC 986.15"},
			},
			Mycotoxins: []model.LimitIndicator{
				{Indicator: "Ochratoxin A", Limit: "≤ 5 µg/kg", Method: "EN 14132:2003"},
			},
			TestingRequirements: []model.TestingRequirement{
				{Seq: 1, Indicator: "Chỉ tiêu Cảm quan (4 chỉ tiêu)", Method: "TCVN 5251:2007", Cost: 400000, Category: "CHẤT LƯỢNG"},
				{Seq: 2, Indicator: "Độ ẩm", Method: "TCVN 6722-1:2000", Cost: 200000, Category: "CHẤT LƯỢNG"},
				{Seq: 3, Indicator: "Hàm lượng Caffeine", Method: "AOAC 976.13", Cost: 600000, Category: "CHẤT LƯỢNG"},
				{Seq: 4, Indicator: "Tổng số vi khuẩn hiếu khí", Method: "TCVN 4884:2005", Cost: 300000, Category: "VI SINH"},
				{Seq: 5, Indicator: "E.coli & Salmonella", Method: "TCVN ISO", Cost: 1100000, Category: "VI SINH"},
				{Seq: 6, Indicator: "Kim loại nặng (Pb, Cd, As)", Method: "ICP-MS", Cost: 1500000, Category: "KIM LOẠI NẶNG"},
			},
			PackagingRequirements: model.PackagingRequirements{
				PackageType: "Túi màng nhôm composite, van một chiều bảo quản hương vị",
				Standard:    "QCVN 12-1:2011/BYT (Bao bì nhựa tiếp xúc trực tiếp)",
				Features:    "Ngăn oxy, độ ẩm, tia UV, giữ hương thơm cà phê lâu dài",
			},
			LabelingRequirements: []model.LabelingRequirement{
				{Requirement: "Tên hàng hóa", Detail: "CÀ PHÊ BỘT RANG XAY"},
				{Requirement: "Thành phần", Detail: "Cà phê Robusta (80%), Arabica (20%)"},
				{Requirement: "Trọng lượng", Detail: "Net Weight: 500g / 1.1 lbs"},
				{Requirement: "Xuất xứ", Detail: "Made in Vietnam (Buôn Ma Thuột)"},
				{Requirement: "Hướng dẫn bảo quản", Detail: "Nơi khô ráo, thoáng mát, tránh ánh nắng trực tiếp"},
			},
		},
		{
			Name:     "Nước mắm truyền thống",
			Code:     "2103.90.12",
			Category: "Chương 21 > 2103 > Nước xốt và các chế phẩm làm nước xốt > Nước mắm",
			Path:     "VNTR > BIỂU THUẾ > CHƯƠNG 21 > 2103",
			SensoryIndicators: model.SensoryIndicators{
				Color:   "Nâu đỏ cánh gián, trong suốt, không lắng cặn",
				Smell:   "Mùi thơm đặc trưng của cá ngâm muối lâu ngày",
				Taste:   "Mặn đầu lưỡi, ngọt hậu thanh, vị đạm tự nhiên",
				Texture: "Lỏng, sánh đặc trưng của nước mắm cốt",
			},
			PhysicalChemical: []model.QualityIndicator{
				{Indicator: "Hàm lượng Nitơ tổng số (Độ đạm)", Value: "≥ 40 g/l", Method: "TCVN 3705:1990"},
				{Indicator: "Hàm lượng Nitơ axit amin", Value: "≥ 50% nitơ tổng số", Method: "TCVN 3708:1990"},
				{Indicator: "Hàm lượng muối NaCl", Value: "245 – 280 g/l", Method: "TCVN 3701:2009"},
			},
			Microbiological: []model.LimitIndicator{
				{Indicator: "Tổng số vi khuẩn hiếu khí", Limit: "≤ 10⁴ CFU/ml", Method: "TCVN 4884:2005"},
				{Indicator: "E.coli", Limit: "Không phát hiện trong 1ml", Method: "TCVN 6846:2008"},
			},
			HeavyMetals: []model.LimitIndicator{
				{Indicator: "Chì (Pb)", Limit: "≤ 0.5 mg/l", Method: "AOAC 999.10"},
				{Indicator: "Asen (As)", Limit: "≤ 1.0 mg/l", Method: "AOAC 986.15"},
			},
			TestingRequirements: []model.TestingRequirement{
				{Seq: 1, Indicator: "Độ đạm tổng số", Method: "TCVN 3705:1990", Cost: 350000, Category: "CHẤT LƯỢNG"},
				{Seq: 2, Indicator: "Hàm lượng muối", Method: "TCVN 3701:2009", Cost: 250000, Category: "CHẤT LƯỢNG"},
				{Seq: 3, Indicator: "Vi sinh tổng hợp", Method: "TCVN 4884:2005", Cost: 800000, Category: "VI SINH"},
			},
			PackagingRequirements: model.PackagingRequirements{
				PackageType: "Chai thủy tinh hoặc chai nhựa PET thực phẩm",
				Standard:    "QCVN 12-1:2011/BYT",
				Features:    "Kín khí, tránh ánh sáng trực tiếp",
			},
			LabelingRequirements: []model.LabelingRequirement{
				{Requirement: "Tên hàng hóa", Detail: "NƯỚC MẮM TRUYỀN THỐNG"},
				{Requirement: "Thành phần", Detail: "Cá cơm, muối biển"},
				{Requirement: "Xuất xứ", Detail: "Made in Vietnam (Phú Quốc)"},
			},
		},
	}
}
