package export

import (
	"testing"

	"compliance-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() *model.Product {
	return &model.Product{
		Name:     "Cà phê bột",
		Code:     "0901.21.20",
		Category: "Chương 09",
		SensoryIndicators: model.SensoryIndicators{
			Color: "Nâu đậm",
			Smell: "Thơm nồng",
		},
		PhysicalChemical: []model.QualityIndicator{
			{Indicator: "Độ ẩm", Value: "≤ 5.0%", Method: "TCVN 6722-1:2000"},
			{Indicator: "Tro tổng số", Value: "≤ 5.0%", Method: "TCVN 6722-2:2000"},
		},
		Microbiological: []model.LimitIndicator{
			{Indicator: "E.coli", Limit: "Không phát hiện trong 1g", Method: "TCVN 6846:2008"},
		},
		HeavyMetals: []model.LimitIndicator{
			{Indicator: "Chì (Pb)", Limit: "≤ 0.2 mg/kg", Method: "AOAC 999.10"},
		},
		TestingRequirements: []model.TestingRequirement{
			{Seq: 1, Indicator: "Độ ẩm", Method: "TCVN", Cost: 200000, Category: "CHẤT LƯỢNG"},
			{Seq: 2, Indicator: "E.coli", Method: "TCVN", Cost: 500000, Category: "VI SINH"},
		},
		LabelingRequirements: []model.LabelingRequirement{
			{Requirement: "Thành phần", Detail: "Cà phê Robusta (80%), Arabica (20%)"},
		},
	}
}

func TestParseOverrides(t *testing.T) {
	t.Run("valid paths", func(t *testing.T) {
		overrides := ParseOverrides(map[string]string{
			"sensory.color": "Vàng nhạt",
			"physical.1":    "≤ 4.0%",
			"micro.0":       "≤ 10 CFU/g",
			"heavy.0":       "≤ 0.1 mg/kg",
		})
		require.Len(t, overrides, 4)
	})

	t.Run("unknown prefix is dropped", func(t *testing.T) {
		overrides := ParseOverrides(map[string]string{
			"testing.0":  "x",
			"myco.0":     "x",
			"packaging":  "x",
			"physical.0": "kept",
		})
		require.Len(t, overrides, 1)
		assert.Equal(t, OverridePhysical, overrides[0].Kind)
	})

	t.Run("unknown sensory field is dropped", func(t *testing.T) {
		overrides := ParseOverrides(map[string]string{"sensory.weight": "x"})
		assert.Empty(t, overrides)
	})

	t.Run("malformed and negative indices are dropped", func(t *testing.T) {
		overrides := ParseOverrides(map[string]string{
			"physical.abc": "x",
			"micro.-1":     "x",
			"heavy.":       "x",
		})
		assert.Empty(t, overrides)
	})

	t.Run("empty map", func(t *testing.T) {
		assert.Nil(t, ParseOverrides(nil))
		assert.Nil(t, ParseOverrides(map[string]string{}))
	})
}

func TestApply(t *testing.T) {
	t.Run("empty override set yields structural copy", func(t *testing.T) {
		base := sampleProduct()
		effective := Apply(base, nil)
		require.Equal(t, base, effective)

		// The copy must not alias the base record's slices.
		effective.PhysicalChemical[0].Value = "changed"
		assert.Equal(t, "≤ 5.0%", base.PhysicalChemical[0].Value)
	})

	t.Run("sensory override replaces field without mutating base", func(t *testing.T) {
		base := sampleProduct()
		effective := Apply(base, ParseOverrides(map[string]string{"sensory.color": "Vàng"}))
		assert.Equal(t, "Vàng", effective.SensoryIndicators.Color)
		assert.Equal(t, "Nâu đậm", base.SensoryIndicators.Color)
	})

	t.Run("indexed overrides replace list values", func(t *testing.T) {
		base := sampleProduct()
		effective := Apply(base, ParseOverrides(map[string]string{
			"physical.0": "≤ 4.0%",
			"micro.0":    "≤ 1 CFU/g",
			"heavy.0":    "≤ 0.05 mg/kg",
		}))
		assert.Equal(t, "≤ 4.0%", effective.PhysicalChemical[0].Value)
		assert.Equal(t, "≤ 1 CFU/g", effective.Microbiological[0].Limit)
		assert.Equal(t, "≤ 0.05 mg/kg", effective.HeavyMetals[0].Limit)
		assert.Equal(t, "≤ 5.0%", base.PhysicalChemical[0].Value)
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		base := sampleProduct()
		effective := Apply(base, ParseOverrides(map[string]string{"physical.99": "x"}))
		require.Equal(t, base, effective)
	})
}
