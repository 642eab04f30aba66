package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

const utf8BOM = "\uFEFF"

// Loader decodes comma-delimited text with a header row into tables
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile loads a table from a CSV file
func (l *Loader) LoadFile(filename string) (*entities.Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", filename, err)
	}
	defer file.Close()

	table, err := l.LoadTable(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return table, nil
}

// LoadTable reads a header row followed by data rows of the same width
func (l *Loader) LoadTable(r io.Reader) (*entities.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("CSV line %d: row width does not match header", parseErr.Line)
		}
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV must have a header row")
	}

	header := normalizeHeader(records[0])
	table, err := entities.NewTable(header, records[1:])
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	return table, nil
}

// WriteTable writes the header and every row of table as CSV
func WriteTable(w io.Writer, table *entities.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(table.Records()); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func normalizeHeader(header []string) []string {
	normalized := make([]string, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		normalized[i] = strings.TrimSpace(col)
	}
	return normalized
}
