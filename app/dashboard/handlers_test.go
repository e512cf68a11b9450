package dashboard

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsphere-app/sportsphere/app/datagen"
)

var (
	testDataOnce sync.Once
	testData     *datagen.Dataset
	testDataErr  error
)

func testDataset(t *testing.T) *datagen.Dataset {
	t.Helper()
	testDataOnce.Do(func() {
		testData, testDataErr = datagen.Build(42)
	})
	require.NoError(t, testDataErr)
	return testData
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(testDataset(t), logger, prometheus.NewRegistry(), nil)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, dst any) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if dst != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	}
	return resp.StatusCode
}

func TestListTables(t *testing.T) {
	srv := newTestServer(t)

	var tables []struct {
		Name string `json:"name"`
		Rows int    `json:"rows"`
	}
	code := getJSON(t, srv, "/api/tables", &tables)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, tables, len(datagen.TableNames))

	byName := make(map[string]int, len(tables))
	for _, ti := range tables {
		byName[ti.Name] = ti.Rows
	}
	assert.Equal(t, datagen.NumAccounts, byName["accounts"])
	assert.Equal(t, datagen.NumLanguages, byName["languages"])
}

type tableResponse struct {
	Table  string           `json:"table"`
	Total  int              `json:"total"`
	Offset int              `json:"offset"`
	Rows   []map[string]any `json:"rows"`
}

func TestGetTablePaging(t *testing.T) {
	srv := newTestServer(t)

	var resp tableResponse
	code := getJSON(t, srv, "/api/tables/accounts?limit=5&offset=10", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "accounts", resp.Table)
	assert.Equal(t, datagen.NumAccounts, resp.Total)
	assert.Equal(t, 10, resp.Offset)
	require.Len(t, resp.Rows, 5)
	assert.Equal(t, "UID_00011", resp.Rows[0]["user_id"])
}

func TestGetTableTypedFilter(t *testing.T) {
	srv := newTestServer(t)

	var resp tableResponse
	code := getJSON(t, srv, "/api/tables/languages?field=is_default&value=true", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, true, resp.Rows[0]["is_default"])
}

func TestGetTableSorted(t *testing.T) {
	srv := newTestServer(t)

	var resp tableResponse
	code := getJSON(t, srv, "/api/tables/teams?sort=rating&order=desc&limit=200", &resp)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Rows, datagen.NumTeams)
	prev := resp.Rows[0]["rating"].(float64)
	for _, row := range resp.Rows[1:] {
		cur := row["rating"].(float64)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestGetTableErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		path string
		code int
	}{
		{"unknown table", "/api/tables/nope", http.StatusNotFound},
		{"unknown filter column", "/api/tables/accounts?field=nope&value=x", http.StatusBadRequest},
		{"bad typed value", "/api/tables/teams?field=rating&value=high", http.StatusBadRequest},
		{"unknown sort column", "/api/tables/accounts?sort=nope", http.StatusBadRequest},
		{"negative limit", "/api/tables/accounts?limit=-1", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]any
			code := getJSON(t, srv, tt.path, &body)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGetSummary(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		Table  string `json:"table"`
		Field  string `json:"field"`
		Groups []struct {
			Value string `json:"value"`
			Count int    `json:"count"`
		} `json:"groups"`
	}
	code := getJSON(t, srv, "/api/tables/accounts/summary?field=gender", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "accounts", resp.Table)
	require.NotEmpty(t, resp.Groups)

	total := 0
	for _, g := range resp.Groups {
		total += g.Count
	}
	assert.Equal(t, datagen.NumAccounts, total, "group counts must sum to the row count")

	code = getJSON(t, srv, "/api/tables/accounts/summary", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	var body map[string]string
	code := getJSON(t, srv, "/healthz", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	getJSON(t, srv, "/api/tables", nil)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "sportsphere_http_requests_total")
}
