package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchShortQuery(t *testing.T) {
	// Queries under the minimum length return an empty success response
	// without touching the database, so no handle is needed.
	h := NewProductHandler(nil)
	e := echo.New()

	for _, q := range []string{"", "c", "à"} {
		t.Run("q="+q, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products/search?q="+url.QueryEscape(q), nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.Search(c))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Success bool              `json:"success"`
				Count   int               `json:"count"`
				Data    []json.RawMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Zero(t, resp.Count)
			assert.Empty(t, resp.Data)
		})
	}
}
