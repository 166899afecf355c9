package export

import (
	"os"
	"strings"
	"testing"

	"compliance-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLabelTXT(t *testing.T) {
	e := newTestExporter(t)

	t.Run("composition comes from labeling requirements verbatim", func(t *testing.T) {
		a, err := e.renderLabel(sampleProduct(), testIssuer(), FormatTXT)
		require.NoError(t, err)
		requireArtifact(t, a)

		data, err := os.ReadFile(a.Path)
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, "CÀ PHÊ BỘT")
		assert.Contains(t, content, "Thành phần: Cà phê Robusta (80%), Arabica (20%)")
		assert.Contains(t, content, "Công ty TNHH Thực phẩm ABC")
	})

	t.Run("missing entries fall back to placeholders", func(t *testing.T) {
		p := &model.Product{Name: "Trà xanh", Code: "0902.10.10"}
		a, err := e.renderLabel(p, Issuer{}, FormatTXT)
		require.NoError(t, err)

		data, err := os.ReadFile(a.Path)
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, "Thành phần: [X]")
		assert.Contains(t, content, "Hướng dẫn: Nơi khô ráo")
		assert.Contains(t, content, "[Tên công ty]")
	})
}

func TestRenderLabelPDF(t *testing.T) {
	e := newTestExporter(t)

	a, err := e.renderLabel(sampleProduct(), testIssuer(), FormatPDF)
	require.NoError(t, err)
	requireArtifact(t, a)
	assert.True(t, strings.HasPrefix(a.Filename, "Nhan_"))
	assert.True(t, strings.HasSuffix(a.Filename, ".pdf"))
}

func TestLabelDetailLookup(t *testing.T) {
	p := sampleProduct()
	assert.Equal(t, "Cà phê Robusta (80%), Arabica (20%)", p.LabelDetail("Thành phần"))
	assert.Equal(t, "", p.LabelDetail("Hướng dẫn bảo quản"))
}
