package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"compliance-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "1.500.000", formatVND(1500000))
	assert.Equal(t, "0", formatVND(0))
	assert.Equal(t, "200.000", formatVND(200000))
}

func TestTotalTestingCost(t *testing.T) {
	t.Run("sum of all rows", func(t *testing.T) {
		p := sampleProduct()
		assert.Equal(t, int64(700000), p.TotalTestingCost())
	})

	t.Run("zero for empty list", func(t *testing.T) {
		p := &model.Product{}
		assert.Equal(t, int64(0), p.TotalTestingCost())
	})
}

func TestRenderTestingJSON(t *testing.T) {
	e := newTestExporter(t)

	a, err := e.renderTestingForm(sampleProduct(), testIssuer(), FormatJSON)
	require.NoError(t, err)
	requireArtifact(t, a)

	data, err := os.ReadFile(a.Path)
	require.NoError(t, err)

	var payload struct {
		Company      string       `json:"company"`
		ProductCode  string       `json:"product_code"`
		Requirements []testingRow `json:"requirements"`
		TotalCost    int64        `json:"total_cost"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "Công ty TNHH Thực phẩm ABC", payload.Company)
	assert.Equal(t, "0901.21.20", payload.ProductCode)
	require.Len(t, payload.Requirements, 2)
	assert.Equal(t, int64(700000), payload.TotalCost)
}

func TestRenderTestingCSV(t *testing.T) {
	e := newTestExporter(t)

	t.Run("rows and header", func(t *testing.T) {
		a, err := e.renderTestingForm(sampleProduct(), testIssuer(), FormatCSV)
		require.NoError(t, err)
		requireArtifact(t, a)

		data, err := os.ReadFile(a.Path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "stt,chi_tieu,phuong_phap,chi_phi_vnd,nhom", strings.TrimSpace(lines[0]))
		assert.Contains(t, lines[1], "200000")
	})

	t.Run("repeat renders have distinct names and identical content", func(t *testing.T) {
		first, err := e.renderTestingForm(sampleProduct(), testIssuer(), FormatCSV)
		require.NoError(t, err)
		second, err := e.renderTestingForm(sampleProduct(), testIssuer(), FormatCSV)
		require.NoError(t, err)

		assert.NotEqual(t, first.Filename, second.Filename)

		a, err := os.ReadFile(first.Path)
		require.NoError(t, err)
		b, err := os.ReadFile(second.Path)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestRenderTestingXLSXAndPDF(t *testing.T) {
	e := newTestExporter(t)

	t.Run("xlsx", func(t *testing.T) {
		a, err := e.renderTestingForm(sampleProduct(), testIssuer(), FormatXLSX)
		require.NoError(t, err)
		requireArtifact(t, a)
		assert.True(t, strings.HasPrefix(a.Filename, "PhieuKN_"))
	})

	t.Run("pdf with empty fee schedule", func(t *testing.T) {
		a, err := e.renderTestingForm(&model.Product{Name: "Trà xanh"}, Issuer{}, FormatPDF)
		require.NoError(t, err)
		requireArtifact(t, a)
	})
}
