package roster

import (
	"strings"

	"github.com/tougshire/orgchart/pkg/errors"
)

// columns maps the known column names to their index in a header row.
type columns map[string]int

// parseHeader locates the known columns. The key column is required; the
// others may be absent, in which case their values are empty.
func parseHeader(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols[name]; dup || name == "" {
			continue
		}
		cols[name] = i
	}
	if _, ok := cols[ColumnKey]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "header is missing the %q column", ColumnKey)
	}
	return cols, nil
}

// get returns the value of column name in row, or "" when the column is
// absent or the row is short.
func (c columns) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (c columns) record(row []string) Record {
	return Record{
		Key:       strings.TrimSpace(c.get(row, ColumnKey)),
		ReportsTo: strings.TrimSpace(c.get(row, ColumnReportsTo)),
		FullName:  c.get(row, ColumnFullName),
		Icon:      strings.TrimSpace(c.get(row, ColumnIcon)),
	}
}

// recordsFromRows converts a header plus data rows into records.
func recordsFromRows(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "input has no header row")
	}
	cols, err := parseHeader(rows[0])
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, cols.record(row))
	}
	return records, nil
}
