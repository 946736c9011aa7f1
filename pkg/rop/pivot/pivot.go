// Package pivot converts between row-oriented and column-oriented records.
package pivot

import "maps"

// EditField returns shallow copies of rows with key replaced by fn(row[key]).
// A row without key gets fn(nil).
func EditField(rows []map[string]any, key string, fn func(any) any) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		edited := maps.Clone(row)
		if edited == nil {
			edited = make(map[string]any, 1)
		}
		edited[key] = fn(row[key])
		out[i] = edited
	}
	return out
}

// Columns pivots rows into one slice per key. A key missing from a row is
// skipped for that row, so columns can be shorter than rows.
func Columns(rows []map[string]any) map[string][]any {
	cols := make(map[string][]any)
	for _, row := range rows {
		for k, v := range row {
			cols[k] = append(cols[k], v)
		}
	}
	return cols
}

// Rows pivots columns back into rows. The row count is the longest column;
// shorter columns yield nil.
func Rows(cols map[string][]any) []map[string]any {
	n := 0
	for _, col := range cols {
		n = max(n, len(col))
	}

	rows := make([]map[string]any, n)
	for i := range rows {
		row := make(map[string]any, len(cols))
		for k, col := range cols {
			if i < len(col) {
				row[k] = col[i]
			} else {
				row[k] = nil
			}
		}
		rows[i] = row
	}
	return rows
}
