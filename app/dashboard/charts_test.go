package dashboard

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestGetChartKinds(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		path string
	}{
		{"bar default", "/api/tables/accounts/chart?field=gender"},
		{"bar explicit", "/api/tables/teams/chart?field=sport_type&kind=bar"},
		{"pie", "/api/tables/shop_items/chart?field=category&kind=pie"},
		{"histogram", "/api/tables/teams/chart?field=rating&kind=histogram"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Greater(t, len(body), len(pngMagic))
			assert.Equal(t, pngMagic, body[:len(pngMagic)])
		})
	}
}

func TestGetChartErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		path string
		code int
	}{
		{"unknown table", "/api/tables/nope/chart?field=x", http.StatusNotFound},
		{"missing field", "/api/tables/accounts/chart", http.StatusBadRequest},
		{"unknown field", "/api/tables/accounts/chart?field=nope", http.StatusBadRequest},
		{"unknown kind", "/api/tables/accounts/chart?field=gender&kind=scatter", http.StatusBadRequest},
		{"histogram on text column", "/api/tables/accounts/chart?field=gender&kind=histogram", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := getJSON(t, srv, tt.path, nil)
			assert.Equal(t, tt.code, code)
		})
	}
}
