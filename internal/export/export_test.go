package export

import (
	"context"
	"os"
	"testing"

	"compliance-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExporter(t *testing.T) *Exporter {
	t.Helper()
	return New(&config.ExportConfig{Dir: t.TempDir()})
}

func testIssuer() Issuer {
	return Issuer{
		Company:        "Công ty TNHH Thực phẩm ABC",
		TaxCode:        "0312345678",
		Address:        "123 Lê Lợi, Quận 1, TP.HCM",
		Phone:          "0901234567",
		Representative: "Nguyễn Văn A",
		Role:           "Tổng giám đốc",
	}
}

// requireArtifact asserts that the render produced a non-empty file.
func requireArtifact(t *testing.T, a *Artifact) {
	t.Helper()
	info, err := os.Stat(a.Path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDefaultFormat(t *testing.T) {
	assert.Equal(t, FormatDocx, DefaultFormat(KindTCCS))
	assert.Equal(t, FormatXLSX, DefaultFormat(KindTesting))
	assert.Equal(t, FormatDocx, DefaultFormat(KindDeclaration))
	assert.Equal(t, FormatPDF, DefaultFormat(KindLabel))
	assert.Equal(t, FormatZIP, DefaultFormat(KindAll))
}

func TestRenderUnknownKind(t *testing.T) {
	e := newTestExporter(t)
	_, err := e.Render(context.Background(), Kind("bogus"), FormatPDF, sampleProduct(), testIssuer(), nil)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestRenderUnsupportedFormat(t *testing.T) {
	e := newTestExporter(t)
	for _, kind := range []Kind{KindTCCS, KindTesting, KindDeclaration, KindLabel} {
		_, err := e.Render(context.Background(), kind, Format("webp"), sampleProduct(), testIssuer(), nil)
		require.ErrorIs(t, err, ErrUnsupportedFormat, "kind %s", kind)
	}
}
