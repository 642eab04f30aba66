package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order when a cell is interpreted as a calendar date
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
}

// Table is an ordered set of named columns holding raw text cells.
// Typed views of a column are produced on demand by the analysis that needs them.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewTable creates a validated Table. The rows are copied.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table must have at least one column")
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i+1)
		}
		if _, exists := index[name]; exists {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		index[name] = i
	}

	copied := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+1, len(columns), len(row))
		}
		copied[i] = append([]string(nil), row...)
	}

	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    copied,
	}, nil
}

// Columns returns the column names in order
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table has a column with the given name
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// RequireColumns fails on the first name that is not a column of the table
func (t *Table) RequireColumns(names ...string) error {
	for _, name := range names {
		if !t.HasColumn(name) {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return nil
}

// Row returns a copy of the cells of row i
func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

// Value returns the cell at row i of the named column
func (t *Table) Value(i int, column string) (string, error) {
	idx, ok := t.index[column]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingColumn, column)
	}
	if i < 0 || i >= len(t.rows) {
		return "", fmt.Errorf("row %d out of range [0, %d)", i, len(t.rows))
	}
	return t.rows[i][idx], nil
}

// Column returns the raw cells of the named column
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = strings.TrimSpace(row[idx])
	}
	return values, nil
}

// Float64Column parses the named column as floating point numbers
func (t *Table) Float64Column(name string) ([]float64, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %q is not a number", ErrType, name, i+1, cell)
		}
		values[i] = v
	}
	return values, nil
}

// DecimalColumn parses the named column as exact decimals
func (t *Table) DecimalColumn(name string) ([]decimal.Decimal, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	values := make([]decimal.Decimal, len(cells))
	for i, cell := range cells {
		v, err := decimal.NewFromString(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %q is not a number", ErrType, name, i+1, cell)
		}
		values[i] = v
	}
	return values, nil
}

// DateColumn parses the named column as calendar dates at UTC midnight
func (t *Table) DateColumn(name string) ([]time.Time, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	values := make([]time.Time, len(cells))
	for i, cell := range cells {
		d, err := ParseDate(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %v", ErrType, name, i+1, err)
		}
		values[i] = d
	}
	return values, nil
}

// ParseDate parses s as a calendar date, discarding any time of day
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a date (expected YYYY-MM-DD)", s)
}

// WithColumn returns a copy of the table with the named column set to values.
// An existing column of the same name is replaced in place; otherwise the
// column is appended.
func (t *Table) WithColumn(name string, values []string) (*Table, error) {
	if len(values) != len(t.rows) {
		return nil, fmt.Errorf("column %q: expected %d values, got %d", name, len(t.rows), len(values))
	}

	columns := t.Columns()
	idx, exists := t.index[name]
	if !exists {
		columns = append(columns, name)
		idx = len(columns) - 1
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		next := make([]string, len(columns))
		copy(next, row)
		next[idx] = values[i]
		rows[i] = next
	}

	return NewTable(columns, rows)
}

// SelectRows returns a new table holding the rows at the given positions, in that order
func (t *Table) SelectRows(positions []int) *Table {
	rows := make([][]string, len(positions))
	for i, p := range positions {
		rows[i] = append([]string(nil), t.rows[p]...)
	}
	index := make(map[string]int, len(t.index))
	for k, v := range t.index {
		index[k] = v
	}
	return &Table{columns: t.Columns(), index: index, rows: rows}
}

// Records returns the header followed by every data row
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.rows)+1)
	records = append(records, t.Columns())
	for _, row := range t.rows {
		records = append(records, append([]string(nil), row...))
	}
	return records
}

// Equal reports whether both tables have the same columns and cells in the same order
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.columns) != len(other.columns) || len(t.rows) != len(other.rows) {
		return false
	}
	for i := range t.columns {
		if t.columns[i] != other.columns[i] {
			return false
		}
	}
	for i := range t.rows {
		for j := range t.rows[i] {
			if t.rows[i][j] != other.rows[i][j] {
				return false
			}
		}
	}
	return true
}
