// Package dashboard serves a read-only HTTP view of one generated dataset:
// table listings, filtered/sorted rows, group summaries, and rendered
// charts. The "create" endpoints are demo stubs that validate input and
// discard it; nothing served here ever mutates the dataset.
package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sportsphere-app/sportsphere/app/datagen"
)

// Handlers implements the dashboard endpoints over one dataset.
type Handlers struct {
	data      *datagen.Dataset
	logger    *slog.Logger
	teamNames map[string]bool
}

// NewHandlers creates the dashboard handlers.
func NewHandlers(data *datagen.Dataset, logger *slog.Logger) *Handlers {
	teamNames := make(map[string]bool)
	for _, t := range data.Teams {
		teamNames[t.TeamName] = true
	}
	return &Handlers{
		data:      data,
		logger:    logger,
		teamNames: teamNames,
	}
}

type tableInfo struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

// ListTables returns every table name with its row count.
func (h *Handlers) ListTables(w http.ResponseWriter, r *http.Request) {
	tables := h.data.Tables()
	out := make([]tableInfo, 0, len(datagen.TableNames))
	for _, name := range datagen.TableNames {
		out = append(out, tableInfo{Name: name, Rows: tables[name].Len()})
	}
	h.respondJSON(w, http.StatusOK, out)
}

// GetTable returns a table's rows as JSON objects. Query parameters:
// field+value (equality filter), sort+order (asc|desc), limit+offset.
func (h *Handlers) GetTable(w http.ResponseWriter, r *http.Request) {
	table, ok := h.data.Table(chi.URLParam(r, "table"))
	if !ok {
		h.respondError(w, http.StatusNotFound, "unknown table")
		return
	}

	q := r.URL.Query()
	if field := q.Get("field"); field != "" {
		want, err := coerceFilterValue(table, field, q.Get("value"))
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		filtered, err := table.FilterEq(field, want)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		table = filtered
	}
	if sortField := q.Get("sort"); sortField != "" {
		sorted, err := table.SortBy(sortField, q.Get("order") == "desc")
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		table = sorted
	}

	offset := intParam(q.Get("offset"), 0)
	limit := intParam(q.Get("limit"), 100)
	if offset < 0 || limit < 0 {
		h.respondError(w, http.StatusBadRequest, "limit and offset must be non-negative")
		return
	}

	columns := table.Columns()
	rows := make([]map[string]any, 0, limit)
	for i := offset; i < table.Len() && len(rows) < limit; i++ {
		row := table.Row(i)
		obj := make(map[string]any, len(columns))
		for j, c := range columns {
			obj[c.Name] = row[j]
		}
		rows = append(rows, obj)
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"table":  table.Name(),
		"total":  table.Len(),
		"offset": offset,
		"rows":   rows,
	})
}

// GetSummary returns distinct-value counts for one field, the input the
// display layer's pie and histogram views are drawn from.
func (h *Handlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	table, ok := h.data.Table(chi.URLParam(r, "table"))
	if !ok {
		h.respondError(w, http.StatusNotFound, "unknown table")
		return
	}
	field := r.URL.Query().Get("field")
	if field == "" {
		h.respondError(w, http.StatusBadRequest, "field parameter is required")
		return
	}
	counts, err := table.CountBy(field)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"table":  table.Name(),
		"field":  field,
		"groups": counts,
	})
}

// Healthz reports liveness.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, map[string]string{"error": msg})
}

// coerceFilterValue parses the query-string filter value into the column's
// value type so equality comparison is typed, not textual.
func coerceFilterValue(t *datagen.Table, field, raw string) (any, error) {
	for _, c := range t.Columns() {
		if c.Name != field {
			continue
		}
		switch c.Kind {
		case datagen.KindInt:
			return strconv.Atoi(raw)
		case datagen.KindFloat:
			return strconv.ParseFloat(raw, 64)
		case datagen.KindBool:
			return strconv.ParseBool(raw)
		case datagen.KindDate:
			return time.ParseInLocation("2006-01-02", raw, time.UTC)
		case datagen.KindTimestamp:
			return time.ParseInLocation("2006-01-02 15:04:05", raw, time.UTC)
		default:
			return raw, nil
		}
	}
	// Let FilterEq produce its unknown-column error.
	return raw, nil
}

func intParam(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
