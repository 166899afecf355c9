package export

import (
	"archive/zip"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBundle(t *testing.T) {
	e := newTestExporter(t)

	a, err := e.renderBundle(context.Background(), sampleProduct(), testIssuer())
	require.NoError(t, err)
	requireArtifact(t, a)
	assert.True(t, strings.HasPrefix(a.Filename, "HoSoFull_"))
	assert.True(t, strings.HasSuffix(a.Filename, ".zip"))

	r, err := zip.OpenReader(a.Path)
	require.NoError(t, err)
	defer r.Close()

	names := make(map[string]bool)
	var manifestFile *zip.File
	for _, f := range r.File {
		names[f.Name] = true
		if f.Name == "manifest.json" {
			manifestFile = f
		}
	}

	// Four documents plus the manifest.
	require.Len(t, r.File, 5)
	require.NotNil(t, manifestFile)

	rc, err := manifestFile.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)

	var manifest bundleManifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, "Cà phê bột", manifest.Product)
	assert.Equal(t, "Công ty TNHH Thực phẩm ABC", manifest.Issuer)
	require.Len(t, manifest.Files, 4)
	for _, name := range manifest.Files {
		assert.True(t, names[name], "manifest references %s which is missing from the archive", name)
	}
}

func TestRenderBundleCancelledContext(t *testing.T) {
	e := newTestExporter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.renderBundle(ctx, sampleProduct(), testIssuer())
	require.Error(t, err)

	// No archive may be exposed after a failed bundle.
	entries, readErr := os.ReadDir(e.store.Dir())
	if readErr == nil {
		for _, entry := range entries {
			assert.NotEqual(t, ".zip", filepath.Ext(entry.Name()))
		}
	}
}
