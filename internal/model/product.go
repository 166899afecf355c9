package model

import (
	"time"

	"gorm.io/gorm"
)

// SensoryIndicators holds the four fixed sensory attributes of a product.
type SensoryIndicators struct {
	Color   string `json:"color"`
	Smell   string `json:"smell"`
	Taste   string `json:"taste"`
	Texture string `json:"texture"`
}

// QualityIndicator is a physicochemical indicator with a target value.
type QualityIndicator struct {
	Indicator string `json:"indicator"`
	Value     string `json:"value"`
	Method    string `json:"method"`
}

// LimitIndicator is an indicator bounded by a regulatory limit
// (microbiological, heavy metals, mycotoxins).
type LimitIndicator struct {
	Indicator string `json:"indicator"`
	Limit     string `json:"limit"`
	Method    string `json:"method"`
}

// TestingRequirement is one row of the accredited-lab fee schedule.
// Cost is in whole VND.
type TestingRequirement struct {
	Seq       int    `json:"stt"`
	Indicator string `json:"indicator"`
	Method    string `json:"method"`
	Cost      int64  `json:"cost"`
	Category  string `json:"category"` // 'CHẤT LƯỢNG', 'VI SINH', 'KIM LOẠI NẶNG'
}

// PackagingRequirements describes mandated packaging for the product.
type PackagingRequirements struct {
	PackageType string `json:"package_type"`
	Standard    string `json:"standard"`
	Features    string `json:"features"`
}

// LabelingRequirement is one mandated label entry, e.g. "Thành phần".
type LabelingRequirement struct {
	Requirement string `json:"requirement"`
	Detail      string `json:"detail"`
}

// Product is a catalog entry describing a food product and the technical
// standards that apply to it. The nested indicator collections are stored as
// JSON columns.
type Product struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	Code     string `json:"code" gorm:"type:varchar(50);not null"` // HS code
	Category string `json:"category" gorm:"type:text;not null"`
	Path     string `json:"path" gorm:"type:text"`

	SensoryIndicators     SensoryIndicators     `json:"sensory_indicators" gorm:"serializer:json;type:jsonb"`
	PhysicalChemical      []QualityIndicator    `json:"physical_chemical" gorm:"serializer:json;type:jsonb"`
	Microbiological       []LimitIndicator      `json:"microbiological" gorm:"serializer:json;type:jsonb"`
	HeavyMetals           []LimitIndicator      `json:"heavy_metals" gorm:"serializer:json;type:jsonb"`
	Mycotoxins            []LimitIndicator      `json:"mycotoxins" gorm:"serializer:json;type:jsonb"`
	TestingRequirements   []TestingRequirement  `json:"testing_requirements" gorm:"serializer:json;type:jsonb"`
	PackagingRequirements PackagingRequirements `json:"packaging_requirements" gorm:"serializer:json;type:jsonb"`
	LabelingRequirements  []LabelingRequirement `json:"labeling_requirements" gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Clone returns a deep copy of the product. The override merger applies
// caller edits to the copy so the stored record is never mutated.
func (p *Product) Clone() *Product {
	cp := *p
	cp.PhysicalChemical = append([]QualityIndicator(nil), p.PhysicalChemical...)
	cp.Microbiological = append([]LimitIndicator(nil), p.Microbiological...)
	cp.HeavyMetals = append([]LimitIndicator(nil), p.HeavyMetals...)
	cp.Mycotoxins = append([]LimitIndicator(nil), p.Mycotoxins...)
	cp.TestingRequirements = append([]TestingRequirement(nil), p.TestingRequirements...)
	cp.LabelingRequirements = append([]LabelingRequirement(nil), p.LabelingRequirements...)
	return &cp
}

// LabelDetail returns the detail text of the labeling requirement with the
// given name, or "" when no entry matches.
func (p *Product) LabelDetail(requirement string) string {
	for _, r := range p.LabelingRequirements {
		if r.Requirement == requirement {
			return r.Detail
		}
	}
	return ""
}

// TotalTestingCost sums the fee schedule. Always recomputed from current
// data, zero for an empty list.
func (p *Product) TotalTestingCost() int64 {
	var total int64
	for _, r := range p.TestingRequirements {
		total += r.Cost
	}
	return total
}
