// Package export serializes datasets to flat row/column files (CSV, or one
// XLSX workbook) and loads tables back. Both formats share one cell-text
// convention so a value round-trips identically through either:
//
//   - dates: 2006-01-02, timestamps: 2006-01-02 15:04:05 (UTC)
//   - floats: shortest representation, bools: true/false
//   - null: the marker \N, distinct from the empty string and from the
//     empty list (a list column's empty cell)
//   - lists: items joined with |; an item containing the delimiter is
//     rejected at save time
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sportsphere-app/sportsphere/app/datagen"
)

const (
	nullMarker    = `\N`
	listDelimiter = "|"

	dateFormat      = "2006-01-02"
	timestampFormat = "2006-01-02 15:04:05"
)

// FormatError reports a cell that could not be encoded or parsed.
type FormatError struct {
	Table  string
	Row    int
	Column string
	Detail string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("export: %s row %d column %q: %s", e.Table, e.Row, e.Column, e.Detail)
}

func encodeCell(col datagen.Column, v any) (string, error) {
	if v == nil {
		return nullMarker, nil
	}
	switch col.Kind {
	case datagen.KindString:
		return v.(string), nil
	case datagen.KindInt:
		return strconv.Itoa(v.(int)), nil
	case datagen.KindFloat:
		return strconv.FormatFloat(v.(float64), 'f', -1, 64), nil
	case datagen.KindBool:
		return strconv.FormatBool(v.(bool)), nil
	case datagen.KindDate:
		return v.(time.Time).Format(dateFormat), nil
	case datagen.KindTimestamp:
		return v.(time.Time).Format(timestampFormat), nil
	case datagen.KindStringList:
		items := v.([]string)
		for _, item := range items {
			if strings.Contains(item, listDelimiter) {
				return "", fmt.Errorf("list item %q contains the delimiter %q", item, listDelimiter)
			}
		}
		return strings.Join(items, listDelimiter), nil
	}
	return "", fmt.Errorf("unknown column kind %d", col.Kind)
}

func decodeCell(col datagen.Column, s string) (any, error) {
	if s == nullMarker {
		return nil, nil
	}
	switch col.Kind {
	case datagen.KindString:
		return s, nil
	case datagen.KindInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", s)
		}
		return n, nil
	case datagen.KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("not a float: %q", s)
		}
		return f, nil
	case datagen.KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("not a bool: %q", s)
		}
		return b, nil
	case datagen.KindDate:
		t, err := time.ParseInLocation(dateFormat, s, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("not a date: %q", s)
		}
		return t, nil
	case datagen.KindTimestamp:
		t, err := time.ParseInLocation(timestampFormat, s, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("not a timestamp: %q", s)
		}
		return t, nil
	case datagen.KindStringList:
		if s == "" {
			return []string{}, nil
		}
		return strings.Split(s, listDelimiter), nil
	}
	return nil, fmt.Errorf("unknown column kind %d", col.Kind)
}
