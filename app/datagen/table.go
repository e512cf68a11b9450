package datagen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the value type of a column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindTimestamp
	KindStringList
)

// Column describes one field of a table's schema.
type Column struct {
	Name string
	Kind Kind
}

// Row holds one record's values, aligned with the table's columns. A nil
// entry is a null; list columns hold []string.
type Row []any

// Table is a named, fixed-schema, ordered sequence of rows. Tables are
// read-only once built; every operation below returns a new view and leaves
// the receiver untouched.
type Table struct {
	name    string
	columns []Column
	rows    []Row
}

func newTable(name string, columns []Column, capacity int) *Table {
	return &Table{
		name:    name,
		columns: columns,
		rows:    make([]Row, 0, capacity),
	}
}

func (t *Table) appendRow(r Row) {
	if len(r) != len(t.columns) {
		panic(fmt.Sprintf("datagen: table %s: row has %d values, schema has %d columns",
			t.name, len(r), len(t.columns)))
	}
	t.rows = append(t.rows, r)
}

// NewTable creates an empty table with the given schema. Generation builds
// its tables internally; this constructor exists for the export loader.
func NewTable(name string, columns []Column) *Table {
	cols := make([]Column, len(columns))
	copy(cols, columns)
	return newTable(name, cols, 0)
}

// Append adds a row, checking arity and value kinds against the schema. A
// nil value is accepted in any column as a null.
func (t *Table) Append(r Row) error {
	if len(r) != len(t.columns) {
		return fmt.Errorf("table %s: row has %d values, schema has %d columns",
			t.name, len(r), len(t.columns))
	}
	for i, v := range r {
		if v == nil {
			continue
		}
		ok := false
		switch t.columns[i].Kind {
		case KindString:
			_, ok = v.(string)
		case KindInt:
			_, ok = v.(int)
		case KindFloat:
			_, ok = v.(float64)
		case KindBool:
			_, ok = v.(bool)
		case KindDate, KindTimestamp:
			_, ok = v.(time.Time)
		case KindStringList:
			_, ok = v.([]string)
		}
		if !ok {
			return fmt.Errorf("table %s: column %q: unexpected value type %T",
				t.name, t.columns[i].Name, v)
		}
	}
	t.rows = append(t.rows, r)
	return nil
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns a copy of the schema.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Row returns the row at index i.
func (t *Table) Row(i int) Row {
	out := make(Row, len(t.rows[i]))
	copy(out, t.rows[i])
	return out
}

// Value returns the named field of row i.
func (t *Table) Value(i int, field string) (any, error) {
	col, err := t.colIndex(field)
	if err != nil {
		return nil, err
	}
	return t.rows[i][col], nil
}

func (t *Table) colIndex(field string) (int, error) {
	for i, c := range t.columns {
		if c.Name == field {
			return i, nil
		}
	}
	return 0, fmt.Errorf("table %s has no column %q", t.name, field)
}

// FilterEq returns the rows whose named field equals want.
func (t *Table) FilterEq(field string, want any) (*Table, error) {
	col, err := t.colIndex(field)
	if err != nil {
		return nil, err
	}
	out := newTable(t.name, t.columns, 0)
	for _, r := range t.rows {
		if equalValue(r[col], want) {
			out.rows = append(out.rows, r)
		}
	}
	return out, nil
}

// SortBy returns the rows ordered by the named field. Nulls sort last in
// either direction.
func (t *Table) SortBy(field string, desc bool) (*Table, error) {
	col, err := t.colIndex(field)
	if err != nil {
		return nil, err
	}
	out := newTable(t.name, t.columns, len(t.rows))
	out.rows = append(out.rows, t.rows...)
	sort.SliceStable(out.rows, func(i, j int) bool {
		a, b := out.rows[i][col], out.rows[j][col]
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		if desc {
			return lessValue(b, a)
		}
		return lessValue(a, b)
	})
	return out, nil
}

// GroupCount is one distinct value of a field and its occurrence count.
type GroupCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CountBy counts rows per distinct value of the named field, in order of
// first appearance. List columns are counted per element, nulls are counted
// under an empty label.
func (t *Table) CountBy(field string) ([]GroupCount, error) {
	col, err := t.colIndex(field)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	var order []string
	bump := func(key string) {
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	for _, r := range t.rows {
		if list, ok := r[col].([]string); ok {
			for _, item := range list {
				bump(item)
			}
			continue
		}
		bump(valueKey(r[col]))
	}
	out := make([]GroupCount, len(order))
	for i, key := range order {
		out[i] = GroupCount{Value: key, Count: counts[key]}
	}
	return out, nil
}

// Floats extracts a numeric column as float64s, skipping nulls.
func (t *Table) Floats(field string) ([]float64, error) {
	col, err := t.colIndex(field)
	if err != nil {
		return nil, err
	}
	switch t.columns[col].Kind {
	case KindInt, KindFloat:
	default:
		return nil, fmt.Errorf("table %s column %q is not numeric", t.name, field)
	}
	out := make([]float64, 0, len(t.rows))
	for _, r := range t.rows {
		switch v := r[col].(type) {
		case int:
			out = append(out, float64(v))
		case float64:
			out = append(out, v)
		}
	}
	return out, nil
}

func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case []string:
		bv, ok := b.([]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case string:
		return av < b.(string)
	case int:
		return av < b.(int)
	case float64:
		return av < b.(float64)
	case bool:
		return !av && b.(bool)
	case time.Time:
		return av.Before(b.(time.Time))
	case []string:
		return strings.Join(av, "|") < strings.Join(b.([]string), "|")
	default:
		return false
	}
}

func valueKey(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case int:
		return strconv.Itoa(tv)
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(tv)
	case time.Time:
		return tv.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(tv)
	}
}
