// Package csvstore implements the repository interfaces on top of one CSV
// file per entity type. Every mutation is load-full, mutate in memory,
// write-full; a per-table mutex serializes mutations and writes go through a
// temp file plus rename so readers never see a half-written table.
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/ident"
	"whites-admin-backend/internal/logger"
)

// codec maps one entity type onto its fixed column schema.
type codec[T any] struct {
	entity  string
	columns []string
	encode  func(*T) []string
	decode  func([]string) (T, error)
	id      func(*T) string
	setID   func(*T, string)
}

type table[T any] struct {
	path  string
	codec codec[T]
	mu    sync.Mutex
}

// newTable ensures the backing file exists with its header row. Idempotent;
// an already-populated file is left alone.
func newTable[T any](dir, file string, c codec[T]) (*table[T], error) {
	t := &table[T]{path: filepath.Join(dir, file), codec: c}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if _, err := os.Stat(t.path); err == nil {
		return t, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err := t.writeAll(nil); err != nil {
		return nil, err
	}
	logger.Debug("Created empty data file", "entity", c.entity, "path", t.path)
	return t, nil
}

// readAll loads the full table. An absent file means an empty table; a file
// that exists but cannot be parsed surfaces as a StorageReadError so data
// loss is never masked as "no data".
func (t *table[T]) readAll() ([]T, error) {
	f, err := os.Open(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StorageReadError{Path: t.path, Err: err}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &domain.StorageReadError{Path: t.path, Err: err}
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !slices.Equal(records[0], t.codec.columns) {
		return nil, &domain.StorageReadError{
			Path: t.path,
			Err:  fmt.Errorf("header mismatch: got [%s]", strings.Join(records[0], ",")),
		}
	}

	rows := make([]T, 0, len(records)-1)
	for i, cells := range records[1:] {
		rec, err := t.codec.decode(cells)
		if err != nil {
			return nil, &domain.StorageReadError{Path: t.path, Err: fmt.Errorf("row %d: %w", i+2, err)}
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// writeAll rewrites the whole table, header row included.
func (t *table[T]) writeAll(rows []T) error {
	tmp, err := os.CreateTemp(filepath.Dir(t.path), "."+filepath.Base(t.path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(t.codec.columns); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	for i := range rows {
		if err := w.Write(t.codec.encode(&rows[i])); err != nil {
			tmp.Close()
			return fmt.Errorf("write %s: %w", t.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	return os.Rename(tmp.Name(), t.path)
}

func (t *table[T]) loadAll() ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readAll()
}

func (t *table[T]) getByID(id string) (*T, error) {
	rows, err := t.loadAll()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if t.codec.id(&rows[i]) == id {
			return &rows[i], nil
		}
	}
	return nil, &domain.NotFoundError{Entity: t.codec.entity, ID: id}
}

// add assigns a fresh ID, appends and persists. The record's every column is
// written; unset optional fields become empty cells.
func (t *table[T]) add(rec *T) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.readAll()
	if err != nil {
		return "", err
	}
	t.codec.setID(rec, t.freshID(rows))
	rows = append(rows, *rec)
	if err := t.writeAll(rows); err != nil {
		return "", err
	}
	return t.codec.id(rec), nil
}

// update replaces the matching row wholesale. An unknown ID is an error, not
// a no-op: the caller intended an edit and must learn it went nowhere.
func (t *table[T]) update(rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.readAll()
	if err != nil {
		return err
	}
	id := t.codec.id(rec)
	for i := range rows {
		if t.codec.id(&rows[i]) == id {
			rows[i] = *rec
			return t.writeAll(rows)
		}
	}
	return &domain.NotFoundError{Entity: t.codec.entity, ID: id}
}

// delete removes the row with the given ID. Deleting an absent ID is a no-op.
func (t *table[T]) delete(id string) error {
	return t.deleteWhere(func(rec *T) bool { return t.codec.id(rec) == id })
}

// deleteWhere removes every row matching the predicate; cascades use it to
// sweep dependent rows.
func (t *table[T]) deleteWhere(match func(*T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.readAll()
	if err != nil {
		return err
	}
	kept := rows[:0]
	removed := 0
	for i := range rows {
		if match(&rows[i]) {
			removed++
			continue
		}
		kept = append(kept, rows[i])
	}
	if removed == 0 {
		return nil
	}
	return t.writeAll(kept)
}

// importBulk appends every row that passes the per-row check, assigning fresh
// IDs. Failing rows are skipped and counted; the import never aborts
// wholesale. The whole batch lands in a single table rewrite.
func (t *table[T]) importBulk(rows []T, check func(existing []T, rec *T) error) (*domain.ImportReport, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, err := t.readAll()
	if err != nil {
		return nil, err
	}

	report := &domain.ImportReport{}
	for i := range rows {
		if err := check(existing, &rows[i]); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		t.codec.setID(&rows[i], t.freshID(existing))
		existing = append(existing, rows[i])
		report.Imported++
	}
	if err := t.writeAll(existing); err != nil {
		return nil, err
	}
	logger.Info("Bulk import finished", "entity", t.codec.entity,
		"imported", report.Imported, "failed", report.Failed)
	return report, nil
}

// exportTable returns the table in raw header-plus-rows form.
func (t *table[T]) exportTable(name string) (*domain.Table, error) {
	rows, err := t.loadAll()
	if err != nil {
		return nil, err
	}
	out := &domain.Table{Name: name, Columns: t.codec.columns}
	for i := range rows {
		out.Rows = append(out.Rows, t.codec.encode(&rows[i]))
	}
	return out, nil
}

// freshID draws IDs until one misses every row already in the table. A single
// draw all but always suffices; the loop guards the truncated-UUID space.
func (t *table[T]) freshID(rows []T) string {
	for {
		id := ident.NewID()
		taken := false
		for i := range rows {
			if t.codec.id(&rows[i]) == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
