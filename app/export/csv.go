package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sportsphere-app/sportsphere/app/datagen"
)

// SaveCSV writes every table of the dataset to dir, one <table>.csv per
// table, creating the directory if needed.
func SaveCSV(dir string, d *datagen.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	for name, table := range d.Tables() {
		path := filepath.Join(dir, name+".csv")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := WriteCSV(f, table); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
	}
	return nil
}

// WriteCSV writes one table: a header row of column names, then one data row
// per record, cells encoded per the package conventions.
func WriteCSV(w io.Writer, t *datagen.Table) error {
	cw := csv.NewWriter(w)
	columns := t.Columns()
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", t.Name(), err)
	}
	record := make([]string, len(columns))
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		for j, col := range columns {
			cell, err := encodeCell(col, row[j])
			if err != nil {
				return &FormatError{Table: t.Name(), Row: i, Column: col.Name, Detail: err.Error()}
			}
			record[j] = cell
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write %s row %d: %w", t.Name(), i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadCSV reads one table back from dir by name, using the generator's
// schema for the table.
func LoadCSV(dir, name string) (*datagen.Table, error) {
	columns, ok := datagen.Schema(name)
	if !ok {
		return nil, fmt.Errorf("export: unknown table %q", name)
	}
	path := filepath.Join(dir, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, name, columns)
}

// ReadCSV parses one table from CSV. The header must match the schema's
// column names exactly; a malformed cell surfaces as a FormatError, never a
// silent null.
func ReadCSV(r io.Reader, name string, columns []datagen.Column) (*datagen.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(columns)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", name, err)
	}
	for i, c := range columns {
		if header[i] != c.Name {
			return nil, &FormatError{Table: name, Row: 0, Column: c.Name,
				Detail: fmt.Sprintf("header mismatch: got %q", header[i])}
		}
	}

	table := datagen.NewTable(name, columns)
	for rowNum := 1; ; rowNum++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", name, rowNum, err)
		}
		row := make(datagen.Row, len(columns))
		for j, col := range columns {
			v, err := decodeCell(col, record[j])
			if err != nil {
				return nil, &FormatError{Table: name, Row: rowNum, Column: col.Name, Detail: err.Error()}
			}
			row[j] = v
		}
		if err := table.Append(row); err != nil {
			return nil, fmt.Errorf("append %s row %d: %w", name, rowNum, err)
		}
	}
	return table, nil
}
