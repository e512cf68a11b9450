package export

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/sportsphere-app/sportsphere/app/datagen"
)

// SaveXLSX writes the whole dataset to one workbook, one sheet per table.
func SaveXLSX(path string, d *datagen.Dataset) error {
	f, err := workbook(d)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// WriteXLSX writes the workbook to w.
func WriteXLSX(w io.Writer, d *datagen.Dataset) error {
	f, err := workbook(d)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func workbook(d *datagen.Dataset) (*excelize.File, error) {
	f := excelize.NewFile()
	tables := d.Tables()
	for i, name := range datagen.TableNames {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				f.Close()
				return nil, fmt.Errorf("create sheet %s: %w", name, err)
			}
		}
		if err := writeSheet(f, name, tables[name]); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// writeSheet fills one sheet with the same cell text the CSV writer emits,
// so both formats follow one encoding contract.
func writeSheet(f *excelize.File, sheet string, t *datagen.Table) error {
	columns := t.Columns()
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c.Name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	cells := make([]any, len(columns))
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		for j, col := range columns {
			text, err := encodeCell(col, row[j])
			if err != nil {
				return &FormatError{Table: sheet, Row: i, Column: col.Name, Detail: err.Error()}
			}
			cells[j] = text
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name for %s row %d: %w", sheet, i, err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i, err)
		}
	}
	return nil
}

// LoadXLSXFile reads one table back from a workbook on disk.
func LoadXLSXFile(path, name string) (*datagen.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadXLSXTable(f, name)
}

// ReadXLSXTable parses one table back from a workbook's sheet.
func ReadXLSXTable(r io.Reader, name string) (*datagen.Table, error) {
	columns, ok := datagen.Schema(name)
	if !ok {
		return nil, fmt.Errorf("export: unknown table %q", name)
	}
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, &FormatError{Table: name, Row: 0, Detail: "sheet has no header row"}
	}
	for i, c := range columns {
		if i >= len(rows[0]) || rows[0][i] != c.Name {
			return nil, &FormatError{Table: name, Row: 0, Column: c.Name, Detail: "header mismatch"}
		}
	}

	table := datagen.NewTable(name, columns)
	for rowNum, record := range rows[1:] {
		row := make(datagen.Row, len(columns))
		for j, col := range columns {
			// GetRows trims trailing empty cells; treat them as empty text.
			cell := ""
			if j < len(record) {
				cell = record[j]
			}
			v, err := decodeCell(col, cell)
			if err != nil {
				return nil, &FormatError{Table: name, Row: rowNum + 1, Column: col.Name, Detail: err.Error()}
			}
			row[j] = v
		}
		if err := table.Append(row); err != nil {
			return nil, fmt.Errorf("append %s row %d: %w", name, rowNum+1, err)
		}
	}
	return table, nil
}
