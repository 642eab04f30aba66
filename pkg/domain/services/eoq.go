package services

import (
	"fmt"
	"math"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// CalculateEOQ returns the economic order quantity sqrt(2*D*S/H) for period
// demand D, cost per order S and holding cost per unit H. All inputs must be positive.
func CalculateEOQ(demand, orderCost, holdingCost float64) (float64, error) {
	if err := requirePositive("demand", demand); err != nil {
		return 0, err
	}
	if err := requirePositive("order_cost", orderCost); err != nil {
		return 0, err
	}
	if err := requirePositive("holding_cost", holdingCost); err != nil {
		return 0, err
	}

	return math.Sqrt(2 * demand * orderCost / holdingCost), nil
}

// CalculateEOQFromTable applies CalculateEOQ to every row of table
func CalculateEOQFromTable(table *entities.Table, demandColumn, orderCostColumn, holdingCostColumn string) ([]float64, error) {
	if err := table.RequireColumns(demandColumn, orderCostColumn, holdingCostColumn); err != nil {
		return nil, err
	}

	demand, err := table.Float64Column(demandColumn)
	if err != nil {
		return nil, err
	}
	orderCost, err := table.Float64Column(orderCostColumn)
	if err != nil {
		return nil, err
	}
	holdingCost, err := table.Float64Column(holdingCostColumn)
	if err != nil {
		return nil, err
	}

	quantities := make([]float64, table.Len())
	for i := range quantities {
		eoq, err := CalculateEOQ(demand[i], orderCost[i], holdingCost[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		quantities[i] = eoq
	}
	return quantities, nil
}

func requirePositive(name string, value float64) error {
	if !(value > 0) || math.IsInf(value, 1) {
		return fmt.Errorf("%w: %s must be positive, got %g", entities.ErrValidation, name, value)
	}
	return nil
}

func requireNonNegative(name string, value float64) error {
	if !(value >= 0) || math.IsInf(value, 1) {
		return fmt.Errorf("%w: %s cannot be negative, got %g", entities.ErrValidation, name, value)
	}
	return nil
}
