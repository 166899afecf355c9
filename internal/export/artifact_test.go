package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreNewArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	s := NewStore(dir)

	t.Run("creates the directory lazily", func(t *testing.T) {
		_, err := os.Stat(dir)
		require.True(t, os.IsNotExist(err))

		a, err := s.NewArtifact("TCCS", "Cà phê bột", FormatPDF)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, dir, filepath.Dir(a.Path))
	})

	t.Run("repeat creation is idempotent", func(t *testing.T) {
		_, err := s.NewArtifact("TCCS", "Cà phê bột", FormatPDF)
		require.NoError(t, err)
	})

	t.Run("whitespace in the product name becomes underscores", func(t *testing.T) {
		a, err := s.NewArtifact("Nhan", "Cà phê  bột\trang xay", FormatTXT)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(a.Filename, "Nhan_Cà_phê_bột_rang_xay_"))
	})

	t.Run("filenames are unique across renders", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			a, err := s.NewArtifact("TCCS", "same name", FormatPDF)
			require.NoError(t, err)
			require.False(t, seen[a.Filename], "duplicate filename %s", a.Filename)
			seen[a.Filename] = true
		}
	})
}

func TestStoreResolve(t *testing.T) {
	s := NewStore(t.TempDir())

	a, err := s.NewArtifact("TCCS", "sample", FormatTXT)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(a.Path, []byte("x"), 0o644))

	t.Run("resolves an existing artifact", func(t *testing.T) {
		path, err := s.Resolve(a.Filename)
		require.NoError(t, err)
		assert.Equal(t, a.Path, path)
	})

	t.Run("rejects traversal and malformed names", func(t *testing.T) {
		for _, name := range []string{"", "../secret", "a/b.pdf", ".hidden"} {
			_, err := s.Resolve(name)
			assert.ErrorIs(t, err, ErrBadFilename, "name %q", name)
		}
	})

	t.Run("missing artifact", func(t *testing.T) {
		_, err := s.Resolve("TCCS_nope_123.pdf")
		assert.ErrorIs(t, err, ErrArtifactNotFound)
	})
}
