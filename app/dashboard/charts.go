package dashboard

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/sportsphere-app/sportsphere/app/datagen"
)

const (
	chartWidth  = 800
	chartHeight = 400

	// maxChartGroups caps categorical charts to the most frequent values so
	// labels stay legible.
	maxChartGroups = 12

	histogramBins = 10
)

// GetChart renders one field of a table as a PNG chart. kind selects the
// rendering: bar or pie over distinct-value counts, histogram over a
// numeric column's bucketed values.
func (h *Handlers) GetChart(w http.ResponseWriter, r *http.Request) {
	table, ok := h.data.Table(chi.URLParam(r, "table"))
	if !ok {
		h.respondError(w, http.StatusNotFound, "unknown table")
		return
	}
	q := r.URL.Query()
	field := q.Get("field")
	if field == "" {
		h.respondError(w, http.StatusBadRequest, "field parameter is required")
		return
	}

	var (
		png []byte
		err error
	)
	switch kind := q.Get("kind"); kind {
	case "bar", "":
		png, err = renderGroupChart(table, field, false)
	case "pie":
		png, err = renderGroupChart(table, field, true)
	case "histogram":
		png, err = renderHistogram(table, field)
	default:
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown chart kind %q", kind))
		return
	}
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Error("failed to write chart", "table", table.Name(), "field", field, "error", err)
	}
}

func renderGroupChart(t *datagen.Table, field string, pie bool) ([]byte, error) {
	groups, err := t.CountBy(field)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return renderPlaceholder("no data")
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })
	if len(groups) > maxChartGroups {
		groups = groups[:maxChartGroups]
	}

	values := make([]chart.Value, len(groups))
	for i, g := range groups {
		values[i] = chart.Value{Label: g.Value, Value: float64(g.Count)}
	}

	buf := bytes.NewBuffer([]byte{})
	if pie {
		graph := chart.PieChart{
			Title:  fmt.Sprintf("%s by %s", t.Name(), field),
			Width:  chartHeight,
			Height: chartHeight,
			Values: values,
		}
		if err := graph.Render(chart.PNG, buf); err != nil {
			return nil, fmt.Errorf("render pie chart: %w", err)
		}
		return buf.Bytes(), nil
	}
	graph := chart.BarChart{
		Title:    fmt.Sprintf("%s by %s", t.Name(), field),
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 40,
		Bars:     values,
	}
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderHistogram(t *datagen.Table, field string) ([]byte, error) {
	values, err := t.Floats(field)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return renderPlaceholder("no data")
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	width := (hi - lo) / histogramBins
	if width == 0 {
		width = 1
	}
	counts := make([]int, histogramBins)
	for _, v := range values {
		bin := int((v - lo) / width)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		counts[bin]++
	}

	bars := make([]chart.Value, histogramBins)
	for i, c := range counts {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.0f", lo+width*float64(i)),
			Value: float64(c),
		}
	}
	buf := bytes.NewBuffer([]byte{})
	graph := chart.BarChart{
		Title:    fmt.Sprintf("%s %s distribution", t.Name(), field),
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 40,
		Bars:     bars,
	}
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render histogram: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPlaceholder(msg string) ([]byte, error) {
	buf := bytes.NewBuffer([]byte{})
	graph := chart.Chart{
		Width:  chartHeight,
		Height: 200,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
