package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationSections(t *testing.T) {
	e := newTestExporter(t)

	t.Run("issuer fields populate the organization section", func(t *testing.T) {
		sections := e.declarationSections(sampleProduct(), testIssuer())
		require.Len(t, sections, 3)

		org := strings.Join(sections[0].lines, "\n")
		assert.Contains(t, org, "Công ty TNHH Thực phẩm ABC")
		assert.Contains(t, org, "0312345678")
		assert.Contains(t, org, "Nguyễn Văn A")
		assert.Contains(t, org, "Tổng giám đốc")
	})

	t.Run("blank issuer falls back to bracketed placeholders", func(t *testing.T) {
		sections := e.declarationSections(sampleProduct(), Issuer{})

		org := strings.Join(sections[0].lines, "\n")
		assert.Contains(t, org, "[Tên công ty]")
		assert.Contains(t, org, "[Mã số thuế]")
		assert.Contains(t, org, "Giám đốc")

		attestation := strings.Join(sections[2].lines, "\n")
		assert.Contains(t, attestation, "[Tên công ty]")
	})

	t.Run("product section carries name, code and composition", func(t *testing.T) {
		sections := e.declarationSections(sampleProduct(), testIssuer())
		product := strings.Join(sections[1].lines, "\n")
		assert.Contains(t, product, "Cà phê bột")
		assert.Contains(t, product, "0901.21.20")
		assert.Contains(t, product, "Cà phê Robusta (80%), Arabica (20%)")
	})
}

func TestRenderDeclarationFiles(t *testing.T) {
	e := newTestExporter(t)

	t.Run("docx", func(t *testing.T) {
		a, err := e.renderDeclaration(sampleProduct(), testIssuer(), FormatDocx)
		require.NoError(t, err)
		requireArtifact(t, a)
		assert.True(t, strings.HasPrefix(a.Filename, "HoSoCB_"))
	})

	t.Run("pdf", func(t *testing.T) {
		a, err := e.renderDeclaration(sampleProduct(), testIssuer(), FormatPDF)
		require.NoError(t, err)
		requireArtifact(t, a)
	})
}
