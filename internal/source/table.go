package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrMissingColumn is returned when a source table lacks a required header.
var ErrMissingColumn = errors.New("required column missing")

// Table is a source file read fully into memory. Cells are trimmed and NFC-normalized.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string

	index map[string]int
}

// ReadTable loads a .csv or .xlsx file. CSV files are decoded with the named
// encoding ("utf-8", "euc-kr" or "cp949"); spreadsheets use the first sheet.
func ReadTable(path, enc string) (*Table, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = readSpreadsheet(path)
	default:
		records, err = readCSV(path, enc)
	}
	if err != nil {
		return nil, err
	}
	return NewTable(filepath.Base(path), records)
}

// NewTable builds a Table from raw records, the first of which is the header.
func NewTable(name string, records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("source: %s: empty table", name)
	}

	t := &Table{
		Name:   name,
		Header: make([]string, len(records[0])),
		index:  make(map[string]int, len(records[0])),
	}
	for i, h := range records[0] {
		h = clean(h)
		t.Header[i] = h
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}

	for _, rec := range records[1:] {
		row := make([]string, len(rec))
		blank := true
		for i, cell := range rec {
			row[i] = clean(cell)
			if row[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Require fails with ErrMissingColumn if any of the columns is absent.
func (t *Table) Require(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("source: %s: %w: %s", t.Name, ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// Has reports whether the header contains column.
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Value returns the cell of row under column, or "" if either is absent.
func (t *Table) Value(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// ColumnsContaining returns header names containing substr, in header order.
func (t *Table) ColumnsContaining(substr string) []string {
	var cols []string
	for _, h := range t.Header {
		if strings.Contains(h, substr) {
			cols = append(cols, h)
		}
	}
	return cols
}

func readCSV(path, enc string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: failed to open file: %w", err)
	}
	defer file.Close()

	dec, err := decoder(enc)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(transform.NewReader(file, dec))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("source: failed to read %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

func readSpreadsheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("source: %s has no sheets", filepath.Base(path))
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("source: failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func decoder(enc string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(enc), "_", "-")) {
	case "", "utf-8", "utf8":
		// strips a leading BOM, which Excel adds to UTF-8 exports
		return unicode.UTF8BOM.NewDecoder(), nil
	case "euc-kr", "euckr", "cp949", "ms949":
		return korean.EUCKR.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("source: unsupported encoding %q", enc)
	}
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
