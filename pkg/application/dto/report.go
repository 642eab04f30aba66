package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/domain/services"
)

// Report is the tabular rendering of one analysis result
type Report struct {
	Title   string     `json:"title" yaml:"title"`
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
	Notes   []string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Records returns the column header followed by the rows
func (r *Report) Records() [][]string {
	records := make([][]string, 0, len(r.Rows)+1)
	records = append(records, r.Columns)
	return append(records, r.Rows...)
}

// FromTable renders a table as-is
func FromTable(title string, table *entities.Table) *Report {
	records := table.Records()
	return &Report{Title: title, Columns: records[0], Rows: records[1:]}
}

// FromTableWithValues renders a table with one computed value per row appended
func FromTableWithValues(title string, table *entities.Table, valueColumn string, values []float64) (*Report, error) {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = FormatFloat(v)
	}
	extended, err := table.WithColumn(valueColumn, cells)
	if err != nil {
		return nil, err
	}
	return FromTable(title, extended), nil
}

// FromScalar renders a single named value
func FromScalar(title, name string, value float64) *Report {
	return &Report{
		Title:   title,
		Columns: []string{name},
		Rows:    [][]string{{FormatFloat(value)}},
	}
}

// FromLeadTimes renders per-row lead times or per-group averages
func FromLeadTimes(title string, result *services.LeadTimeResult, groupColumn string) *Report {
	if result.Grouped() {
		report := &Report{Title: title, Columns: []string{groupColumn, "average_lead_time_days", "orders"}}
		for _, g := range result.Groups {
			report.Rows = append(report.Rows, []string{g.Group, FormatFloat(g.AverageDays), strconv.Itoa(g.Orders)})
		}
		return report
	}

	report := &Report{Title: title, Columns: []string{"row", "lead_time_days"}}
	for i, d := range result.Days {
		report.Rows = append(report.Rows, []string{strconv.Itoa(i + 1), strconv.Itoa(d)})
	}
	return report
}

// FromSeries renders a demand series as date/value rows
func FromSeries(title string, series *entities.DemandSeries) *Report {
	valueColumn := series.Name
	if valueColumn == "" {
		valueColumn = "value"
	}
	report := &Report{Title: title, Columns: []string{"date", valueColumn}}
	for i, v := range series.Values {
		report.Rows = append(report.Rows, []string{series.Timestamps[i].Format(time.DateOnly), FormatFloat(v)})
	}
	return report
}

// FromProductSales renders top-selling products
func FromProductSales(title, productColumn string, sales []services.ProductSales) *Report {
	report := &Report{Title: title, Columns: []string{productColumn, services.TotalQuantityColumn}}
	for _, s := range sales {
		report.Rows = append(report.Rows, []string{s.Product, s.TotalQuantity.String()})
	}
	return report
}

// CategoryNotes describes each ABC class in one line
func CategoryNotes(summaries []services.CategorySummary) []string {
	notes := make([]string, len(summaries))
	for i, s := range summaries {
		notes[i] = fmt.Sprintf("%s: %d items, value %s (%s%%)",
			s.Category, s.Items, s.Value.String(), s.Share.Shift(2).StringFixed(1))
	}
	return notes
}

// FormatFloat formats v with the fewest digits that represent it exactly
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
