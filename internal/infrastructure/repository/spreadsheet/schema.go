package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/football-scouting/internal/platform/textnorm"
)

// Field maps one canonical field to the header names it may appear under.
// Header is written when the column has to be created.
type Field struct {
	Name     string
	Header   string
	Aliases  []string
	Required bool
	Numeric  bool
}

type Schema struct {
	Sheet  string
	Fields []Field
}

// SchemaError names every required field that no header resolved to.
type SchemaError struct {
	File    string
	Sheet   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: sheet %q is missing required columns: %s", e.File, e.Sheet, strings.Join(e.Missing, ", "))
}

// Mapping is a schema resolved against a concrete header row.
type Mapping struct {
	schema  Schema
	headers []string
	index   map[string]int
}

// Resolve matches headers to fields ignoring case, accents, spacing and
// punctuation. Optional fields may be absent; a missing required field
// fails with *SchemaError. An empty header row resolves nothing and is not
// validated, since that is an empty sheet.
func (s Schema) Resolve(file string, headers []string) (*Mapping, error) {
	m := &Mapping{schema: s, headers: append([]string(nil), headers...), index: make(map[string]int)}
	if len(headers) == 0 {
		return m, nil
	}

	byKey := make(map[string]int, len(headers))
	for i, h := range headers {
		k := textnorm.Key(h)
		if k == "" {
			continue
		}
		if _, dup := byKey[k]; !dup {
			byKey[k] = i
		}
	}

	var missing []string
	for _, f := range s.Fields {
		found := false
		for _, name := range f.names() {
			if i, ok := byKey[textnorm.Key(name)]; ok {
				m.index[f.Name] = i
				found = true
				break
			}
		}
		if !found && f.Required {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{File: file, Sheet: s.Sheet, Missing: missing}
	}
	return m, nil
}

func (f Field) names() []string {
	out := make([]string, 0, len(f.Aliases)+2)
	out = append(out, f.Header, f.Name)
	return append(out, f.Aliases...)
}

func (m *Mapping) Has(field string) bool {
	_, ok := m.index[field]
	return ok
}

// ensure returns the column of field, appending a header when the sheet
// does not carry it yet.
func (m *Mapping) ensure(field string) int {
	if i, ok := m.index[field]; ok {
		return i
	}
	header := field
	for _, f := range m.schema.Fields {
		if f.Name == field && f.Header != "" {
			header = f.Header
		}
	}
	m.headers = append(m.headers, header)
	m.index[field] = len(m.headers) - 1
	return m.index[field]
}

func (m *Mapping) numericCols() map[int]bool {
	out := make(map[int]bool)
	for _, f := range m.schema.Fields {
		if i, ok := m.index[f.Name]; ok && f.Numeric {
			out[i] = true
		}
	}
	return out
}

// Record is one data row viewed through a mapping. Unknown columns are kept
// untouched when the row is written back.
type Record struct {
	m     *Mapping
	cells []string
}

func (m *Mapping) NewRecord() Record {
	return Record{m: m}
}

func (r Record) Get(field string) string {
	i, ok := r.m.index[field]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

func (r *Record) Set(field, value string) {
	i := r.m.ensure(field)
	for len(r.cells) <= i {
		r.cells = append(r.cells, "")
	}
	r.cells[i] = value
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
