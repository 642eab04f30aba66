package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// DefaultTopN is the number of products TopSellingProducts callers usually ask for
const DefaultTopN = 10

// TotalQuantityColumn names the aggregated quantity in tabular renderings
const TotalQuantityColumn = "total_quantity"

// ProductSales is the total quantity sold of one product
type ProductSales struct {
	Product       string
	TotalQuantity decimal.Decimal
}

// TopSellingProducts sums quantityColumn per distinct productColumn value and
// returns the topN products with the largest totals, largest first. Products
// with equal totals are ordered by their first appearance in the table.
func TopSellingProducts(table *entities.Table, productColumn, quantityColumn string, topN int) ([]ProductSales, error) {
	if err := table.RequireColumns(productColumn, quantityColumn); err != nil {
		return nil, err
	}
	if topN <= 0 {
		return nil, fmt.Errorf("%w: top_n must be positive, got %d", entities.ErrValidation, topN)
	}

	products, err := table.Column(productColumn)
	if err != nil {
		return nil, err
	}
	quantities, err := table.DecimalColumn(quantityColumn)
	if err != nil {
		return nil, err
	}

	position := make(map[string]int)
	var totals []ProductSales
	for i, product := range products {
		idx, seen := position[product]
		if !seen {
			idx = len(totals)
			position[product] = idx
			totals = append(totals, ProductSales{Product: product, TotalQuantity: decimal.Zero})
		}
		totals[idx].TotalQuantity = totals[idx].TotalQuantity.Add(quantities[i])
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].TotalQuantity.GreaterThan(totals[j].TotalQuantity)
	})

	if len(totals) > topN {
		totals = totals[:topN]
	}
	return totals, nil
}
