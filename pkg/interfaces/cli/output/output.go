package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/vsinha/inventory/pkg/application/dto"
)

// Formats lists the supported output formats
var Formats = []string{"text", "json", "csv", "yaml", "xlsx"}

const (
	reportSheet = "Report"
	notesSheet  = "Notes"
)

// Config holds configuration for output generation
type Config struct {
	Format string
	// OutputPath is the file to write; empty writes to Stdout
	OutputPath string
	Stdout     io.Writer
}

// Generate writes the report in the specified format
func Generate(report *dto.Report, config Config) error {
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}

	var (
		data []byte
		err  error
	)
	switch config.Format {
	case "", "text":
		data = renderText(report)
	case "json":
		data, err = renderJSON(report)
	case "csv":
		data, err = renderCSV(report)
	case "yaml":
		data, err = renderYAML(report)
	case "xlsx":
		return writeXLSX(report, config.OutputPath)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
	if err != nil {
		return err
	}

	if config.OutputPath == "" {
		_, err := config.Stdout.Write(data)
		return err
	}
	return writeFile(config.OutputPath, data)
}

func renderText(report *dto.Report) []byte {
	var buf bytes.Buffer

	if report.Title != "" {
		fmt.Fprintf(&buf, "📊 %s\n", report.Title)
		fmt.Fprintf(&buf, "%s\n\n", strings.Repeat("=", utf8.RuneCountInString(report.Title)+3))
	}

	widths := make([]int, len(report.Columns))
	for i, col := range report.Columns {
		widths[i] = utf8.RuneCountInString(col)
	}
	for _, row := range report.Rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	writeLine := func(cells []string) {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(&buf, strings.TrimRight(strings.Join(padded, "  "), " "))
	}

	writeLine(report.Columns)
	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("-", w)
	}
	writeLine(rules)
	for _, row := range report.Rows {
		writeLine(row)
	}

	if len(report.Notes) > 0 {
		fmt.Fprintln(&buf)
		for _, note := range report.Notes {
			fmt.Fprintf(&buf, "  %s\n", note)
		}
	}
	return buf.Bytes()
}

func renderJSON(report *dto.Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

func renderYAML(report *dto.Report) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func renderCSV(report *dto.Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(report.Records()); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// writeXLSX writes the report rows to a workbook sheet, with notes on a second sheet
func writeXLSX(report *dto.Report, path string) error {
	if path == "" {
		return fmt.Errorf("output path required for xlsx format")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for r, record := range report.Records() {
		for c, value := range record {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(reportSheet, cell, cellValue(value, r == 0)); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if len(report.Notes) > 0 {
		if _, err := f.NewSheet(notesSheet); err != nil {
			return fmt.Errorf("failed to create notes sheet: %w", err)
		}
		for i, note := range report.Notes {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(notesSheet, cell, note); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write xlsx file: %w", err)
	}
	return nil
}

// cellValue stores numeric data cells as numbers so spreadsheets can sum them
func cellValue(value string, header bool) interface{} {
	if header {
		return value
	}
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		return v
	}
	return value
}

func writeFile(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
