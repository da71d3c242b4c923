// Package spreadsheet persists scouting data as xlsx workbooks that scouts
// can still open in Excel. Every write rewrites the whole file.
package spreadsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Table is a sheet read into memory: the header row and the data rows.
// NumericCols marks column indexes written as numbers.
type Table struct {
	Headers     []string
	Rows        [][]string
	NumericCols map[int]bool
}

var (
	locksMu sync.Mutex
	locks   = map[string]*sync.Mutex{}
)

// fileLock serializes read-modify-write cycles on one path within the process.
func fileLock(path string) *sync.Mutex {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	locksMu.Lock()
	defer locksMu.Unlock()
	mu, ok := locks[abs]
	if !ok {
		mu = &sync.Mutex{}
		locks[abs] = mu
	}
	return mu
}

// Workbook is one xlsx file on disk.
type Workbook struct {
	path string
	mu   *sync.Mutex
}

func OpenWorkbook(path string) *Workbook {
	return &Workbook{path: path, mu: fileLock(path)}
}

func (w *Workbook) Path() string { return w.path }

// Sheets lists sheet names; a missing file has none.
func (w *Workbook) Sheets() ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// Load reads sheet (the first sheet when empty). A missing file or sheet is
// an empty table, not an error.
func (w *Workbook) Load(sheet string) (Table, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.load(sheet)
}

func (w *Workbook) load(sheet string) (Table, error) {
	f, err := w.open()
	if err != nil || f == nil {
		return Table{}, err
	}
	defer f.Close()

	name, ok := findSheet(f, sheet)
	if !ok {
		return Table{}, nil
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q of %s: %w", name, filepath.Base(w.path), err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}
	return Table{Headers: rows[0], Rows: rows[1:]}, nil
}

// Update loads sheet, lets fn produce the replacement, and rewrites the
// whole file under the file lock. Returning errSkipWrite from fn leaves the
// file untouched.
func (w *Workbook) Update(sheet string, fn func(Table) (Table, error)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	current, err := w.load(sheet)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if errors.Is(err, errSkipWrite) {
		return nil
	}
	if err != nil {
		return err
	}
	return w.write(sheet, next)
}

var errSkipWrite = errors.New("spreadsheet: nothing to write")

func (w *Workbook) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(w.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(w.path), err)
	}
	return f, nil
}

// write replaces sheet with t, keeping every other sheet of the file, and
// swaps the file in atomically.
func (w *Workbook) write(sheet string, t Table) error {
	f, err := w.open()
	if err != nil {
		return err
	}
	fresh := f == nil
	if fresh {
		f = excelize.NewFile()
	}
	defer f.Close()

	name, exists := findSheet(f, sheet)
	if !exists {
		name = SheetName(sheet)
	}

	const scratch = "__rewrite__"
	if _, err := f.NewSheet(scratch); err != nil {
		return fmt.Errorf("create scratch sheet: %w", err)
	}
	if err := writeRow(f, scratch, 1, t.Headers, nil); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, scratch, i+2, row, t.NumericCols); err != nil {
			return err
		}
	}

	if exists {
		if err := f.DeleteSheet(name); err != nil {
			return fmt.Errorf("drop sheet %q: %w", name, err)
		}
	}
	if fresh {
		if def := "Sheet1"; def != name {
			if err := f.DeleteSheet(def); err != nil {
				return fmt.Errorf("drop default sheet: %w", err)
			}
		}
	}
	if err := f.SetSheetName(scratch, name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	return w.replaceFile(f)
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []string, numeric map[int]bool) error {
	if len(cells) == 0 {
		return nil
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = cellValue(c, numeric[i])
	}
	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, start, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}

func (w *Workbook) replaceFile(f *excelize.File) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := f.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write workbook: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close workbook: %w", err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", filepath.Base(w.path), err)
	}
	return nil
}

// findSheet matches sheet names case-insensitively. An empty name selects
// the first sheet.
func findSheet(f *excelize.File, sheet string) (string, bool) {
	list := f.GetSheetList()
	if strings.TrimSpace(sheet) == "" {
		if len(list) == 0 {
			return "", false
		}
		return list[0], true
	}
	want := SheetName(sheet)
	for _, name := range list {
		if strings.EqualFold(name, want) {
			return name, true
		}
	}
	return "", false
}

// SheetName makes s a legal sheet name: no []:*?/\ and at most 31 runes.
func SheetName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '-'
		}
		return r
	}, s)
	if r := []rune(s); len(r) > 31 {
		s = string(r[:31])
	}
	if s == "" {
		s = "Sheet1"
	}
	return s
}

func cellValue(raw string, numeric bool) any {
	if numeric {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			return n
		}
	}
	return raw
}
