package external

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"entropylab/pkg/table"
)

// TableWriter serializes a sheet in one file format.
type TableWriter interface {
	Ext() string
	Write(w io.Writer, s table.Sheet) error
}

func NewTableWriter(format string) (TableWriter, error) {
	switch format {
	case "xlsx", "":
		return XLSXWriter{}, nil
	case "csv":
		return CSVWriter{}, nil
	}
	return nil, fmt.Errorf("unsupported table format %q", format)
}

// ExportSheet writes s to dir/<s.Name><ext> atomically and returns the path.
func ExportSheet(dir string, tw TableWriter, s table.Sheet) (string, error) {
	path := filepath.Join(dir, s.Name+tw.Ext())
	err := WriteFileAtomic(path, func(w io.Writer) error {
		return tw.Write(w, s)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

type XLSXWriter struct{}

func (XLSXWriter) Ext() string { return ".xlsx" }

func (XLSXWriter) Write(w io.Writer, s table.Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", s.Name); err != nil {
		return err
	}
	for i, row := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", s.Name, i+1, err)
		}
	}
	return f.Write(w)
}

type CSVWriter struct{}

func (CSVWriter) Ext() string { return ".csv" }

func (CSVWriter) Write(w io.Writer, s table.Sheet) error {
	cw := csv.NewWriter(w)
	for _, row := range s.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatCell(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
