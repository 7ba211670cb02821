// Package export serializes loaded tables into download formats. All three
// adapters are pure: bytes in, bytes out, no side effects.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"whites-admin-backend/internal/domain"
)

// ToCSV renders one table, header row first.
func ToCSV(t *domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToWorkbook renders an xlsx workbook with one sheet per table. Tables with
// zero rows are omitted; a workbook of only empty tables still carries a
// single blank sheet because the format requires one.
func ToWorkbook(tables []*domain.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	added := 0
	for _, t := range tables {
		if len(t.Rows) == 0 {
			continue
		}
		if added == 0 {
			// Rename the default sheet rather than leaving it empty.
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return nil, err
		}
		added++

		if err := writeSheet(f, t); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, t *domain.Table) error {
	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.Name, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}

// ToZip bundles named blobs into a zip archive, entries in name order so the
// output is deterministic.
func ToZip(blobs map[string][]byte) ([]byte, error) {
	names := make([]string, 0, len(blobs))
	for name := range blobs {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", name, err)
		}
		if _, err := w.Write(blobs[name]); err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TablesToZip is the common bundle: every table as name.csv inside one zip.
func TablesToZip(tables []*domain.Table) ([]byte, error) {
	blobs := make(map[string][]byte, len(tables))
	for _, t := range tables {
		data, err := ToCSV(t)
		if err != nil {
			return nil, err
		}
		blobs[t.Name+".csv"] = data
	}
	return ToZip(blobs)
}
