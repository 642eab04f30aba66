package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// ABCThresholds are the cumulative value shares that close class A and class B
type ABCThresholds struct {
	A float64
	B float64
}

// DefaultABCThresholds returns the conventional 80/95 split
func DefaultABCThresholds() ABCThresholds {
	return ABCThresholds{A: 0.80, B: 0.95}
}

// Validate checks that 0 < A < B <= 1
func (th ABCThresholds) Validate() error {
	if !(th.A > 0 && th.A < 1) {
		return fmt.Errorf("%w: a_threshold must be in (0, 1), got %g", entities.ErrValidation, th.A)
	}
	if !(th.B > th.A && th.B <= 1) {
		return fmt.Errorf("%w: b_threshold must be in (%g, 1], got %g", entities.ErrValidation, th.A, th.B)
	}
	return nil
}

// CategorySummary aggregates the items of one ABC class
type CategorySummary struct {
	Category entities.Category
	Items    int
	Value    decimal.Decimal
	Share    decimal.Decimal
}

// ClassifyInventory ranks rows by valueColumn, highest first, and assigns each
// row the class of its running share of the column total: A up to thresholds.A,
// B up to thresholds.B, C beyond. Rows with equal values keep their original
// relative order. The result holds every input row exactly once with an added
// category column.
func ClassifyInventory(table *entities.Table, valueColumn string, thresholds ABCThresholds) (*entities.Table, error) {
	if err := table.RequireColumns(valueColumn); err != nil {
		return nil, err
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	values, err := table.DecimalColumn(valueColumn)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: total of %q must be positive, got %s",
			entities.ErrValidation, valueColumn, total.String())
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]].GreaterThan(values[order[j]])
	})

	limitA := decimal.NewFromFloat(thresholds.A)
	limitB := decimal.NewFromFloat(thresholds.B)

	categories := make([]string, len(order))
	cumulative := decimal.Zero
	for pos, row := range order {
		cumulative = cumulative.Add(values[row])
		share := cumulative.Div(total)

		category := entities.CategoryC
		switch {
		case share.LessThanOrEqual(limitA):
			category = entities.CategoryA
		case share.LessThanOrEqual(limitB):
			category = entities.CategoryB
		}
		categories[pos] = category.String()
	}

	return table.SelectRows(order).WithColumn(entities.CategoryColumn, categories)
}

// SummarizeCategories counts items and sums valueColumn per class of a
// classified table. Classes are returned in A, B, C order, including empty ones.
func SummarizeCategories(classified *entities.Table, valueColumn string) ([]CategorySummary, error) {
	if err := classified.RequireColumns(valueColumn, entities.CategoryColumn); err != nil {
		return nil, err
	}

	values, err := classified.DecimalColumn(valueColumn)
	if err != nil {
		return nil, err
	}
	labels, err := classified.Column(entities.CategoryColumn)
	if err != nil {
		return nil, err
	}

	summaries := []CategorySummary{
		{Category: entities.CategoryA, Value: decimal.Zero, Share: decimal.Zero},
		{Category: entities.CategoryB, Value: decimal.Zero, Share: decimal.Zero},
		{Category: entities.CategoryC, Value: decimal.Zero, Share: decimal.Zero},
	}

	total := decimal.Zero
	for i, label := range labels {
		category, err := entities.ParseCategory(label)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", entities.ErrType, i+1, err)
		}
		summaries[category].Items++
		summaries[category].Value = summaries[category].Value.Add(values[i])
		total = total.Add(values[i])
	}

	if total.IsPositive() {
		for i := range summaries {
			summaries[i].Share = summaries[i].Value.Div(total)
		}
	}
	return summaries, nil
}
