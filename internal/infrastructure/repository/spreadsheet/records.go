package spreadsheet

import "path/filepath"

// ReadRecords loads every non-blank data row of the schema's sheet.
func ReadRecords(wb *Workbook, s Schema) ([]Record, error) {
	t, err := wb.Load(s.Sheet)
	if err != nil {
		return nil, err
	}
	m, err := s.Resolve(filepath.Base(wb.Path()), t.Headers)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		if blank(row) {
			continue
		}
		out = append(out, Record{m: m, cells: row})
	}
	return out, nil
}

// AppendRecords adds rows after the existing data, creating the file, sheet
// or header row as needed.
func AppendRecords(wb *Workbook, s Schema, build func(m *Mapping) []Record) error {
	return RewriteRecords(wb, s, func(m *Mapping, existing []Record) ([]Record, error) {
		return append(existing, build(m)...), nil
	})
}

// RewriteRecords replaces the sheet with whatever fn returns. Blank rows
// are dropped on the way through.
func RewriteRecords(wb *Workbook, s Schema, fn func(m *Mapping, existing []Record) ([]Record, error)) error {
	return wb.Update(s.Sheet, func(t Table) (Table, error) {
		m, err := s.Resolve(filepath.Base(wb.Path()), t.Headers)
		if err != nil {
			return Table{}, err
		}
		existing := make([]Record, 0, len(t.Rows))
		for _, row := range t.Rows {
			if blank(row) {
				continue
			}
			existing = append(existing, Record{m: m, cells: append([]string(nil), row...)})
		}

		// every schema field gets a column so a fresh sheet is self-describing
		for _, f := range s.Fields {
			m.ensure(f.Name)
		}
		next, err := fn(m, existing)
		if err != nil {
			return Table{}, err
		}

		out := Table{Headers: m.headers, Rows: make([][]string, 0, len(next)), NumericCols: m.numericCols()}
		for _, r := range next {
			out.Rows = append(out.Rows, r.cells)
		}
		return out, nil
	})
}
