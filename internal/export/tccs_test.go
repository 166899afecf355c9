package export

import (
	"strings"
	"testing"

	"compliance-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTCCSSections(t *testing.T) {
	e := newTestExporter(t)

	t.Run("scope interpolates product and issuer", func(t *testing.T) {
		got := e.tccsScope(sampleProduct(), testIssuer())
		assert.Contains(t, got, "Cà phê bột")
		assert.Contains(t, got, "Công ty TNHH Thực phẩm ABC")
	})

	t.Run("scope falls back on blank company", func(t *testing.T) {
		got := e.tccsScope(sampleProduct(), Issuer{})
		assert.Contains(t, got, "[Tên công ty]")
	})

	t.Run("sensory lines fall back per attribute", func(t *testing.T) {
		lines := e.tccsSensoryLines(sampleProduct())
		require.Len(t, lines, 4)
		assert.Equal(t, "- Màu sắc: Nâu đậm", lines[0])
		// Taste and texture are blank in the sample product.
		assert.Equal(t, "- Vị: Theo tiêu chuẩn công bố", lines[2])
		assert.Equal(t, "- Trạng thái: Theo tiêu chuẩn công bố", lines[3])
	})

	t.Run("physical lines render indicator, value and method", func(t *testing.T) {
		p := &model.Product{
			PhysicalChemical: []model.QualityIndicator{
				{Indicator: "Moisture", Value: "≤5%", Method: "M1"},
			},
		}
		lines := e.tccsPhysicalLines(p)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "Moisture: ≤5% (M1)")
	})

	t.Run("physical override flows into the rendered line", func(t *testing.T) {
		base := &model.Product{
			Name: "Coffee Powder",
			PhysicalChemical: []model.QualityIndicator{
				{Indicator: "Moisture", Value: "≤5%", Method: "M1"},
			},
		}
		effective := Apply(base, ParseOverrides(map[string]string{"physical.0": "≤4%"}))
		lines := e.tccsPhysicalLines(effective)
		assert.Contains(t, lines[0], "Moisture: ≤4% (M1)")
		assert.Equal(t, "≤5%", base.PhysicalChemical[0].Value)
	})

	t.Run("empty sections use documented fallbacks", func(t *testing.T) {
		p := &model.Product{}
		assert.Equal(t, []string{"Theo quy định của tiêu chuẩn liên quan"}, e.tccsPhysicalLines(p))
		assert.Equal(t, []string{"Theo QCVN 8-3:2012/BYT"}, e.tccsMicroLines(p))
	})
}

func TestRenderTCCSFiles(t *testing.T) {
	e := newTestExporter(t)

	t.Run("pdf", func(t *testing.T) {
		a, err := e.renderTCCS(sampleProduct(), testIssuer(), FormatPDF)
		require.NoError(t, err)
		requireArtifact(t, a)
		assert.True(t, strings.HasPrefix(a.Filename, "TCCS_"))
		assert.True(t, strings.HasSuffix(a.Filename, ".pdf"))
	})

	t.Run("docx", func(t *testing.T) {
		a, err := e.renderTCCS(sampleProduct(), testIssuer(), FormatDocx)
		require.NoError(t, err)
		requireArtifact(t, a)
		assert.True(t, strings.HasSuffix(a.Filename, ".docx"))
	})

	t.Run("docx with empty issuer uses placeholders", func(t *testing.T) {
		a, err := e.renderTCCS(sampleProduct(), Issuer{}, FormatDocx)
		require.NoError(t, err)
		requireArtifact(t, a)
	})
}
