package export

import "strings"

// Fallbacks maps every optional document field to the text substituted when
// the source value is blank. One table is applied uniformly by all
// renderers; missing data never fails a render.
type Fallbacks struct {
	Company        string
	Address        string
	TaxCode        string
	Phone          string
	Representative string
	Role           string

	// Sensory is used for any blank sensory attribute line.
	Sensory string
	// PhysicalSection replaces an empty physicochemical indicator list.
	PhysicalSection string
	// MicroSection replaces an empty microbiological indicator list with the
	// applicable regulatory citation.
	MicroSection string
	// Composition is the label composition line when no "Thành phần"
	// labeling requirement exists.
	Composition string
	// Storage is the label storage line when no "Hướng dẫn bảo quản"
	// labeling requirement exists.
	Storage string
}

// DefaultFallbacks returns the documented placeholder set.
func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		Company:         "[Tên công ty]",
		Address:         "[Địa chỉ công ty]",
		TaxCode:         "[Mã số thuế]",
		Phone:           "[Số điện thoại]",
		Representative:  "[Người đại diện]",
		Role:            "Giám đốc",
		Sensory:         "Theo tiêu chuẩn công bố",
		PhysicalSection: "Theo quy định của tiêu chuẩn liên quan",
		MicroSection:    "Theo QCVN 8-3:2012/BYT",
		Composition:     "[X]",
		Storage:         "Nơi khô ráo",
	}
}

// orElse returns the value, or the fallback when the value is blank.
func orElse(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
