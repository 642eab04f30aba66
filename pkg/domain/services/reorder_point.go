package services

import (
	"fmt"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// CalculateReorderPoint returns dailyDemand*leadTimeDays + safetyStock.
// Zero is allowed for every input; negatives are rejected.
func CalculateReorderPoint(dailyDemand, leadTimeDays, safetyStock float64) (float64, error) {
	if err := requireNonNegative("daily_demand", dailyDemand); err != nil {
		return 0, err
	}
	if err := requireNonNegative("lead_time_days", leadTimeDays); err != nil {
		return 0, err
	}
	if err := requireNonNegative("safety_stock", safetyStock); err != nil {
		return 0, err
	}

	return dailyDemand*leadTimeDays + safetyStock, nil
}

// CalculateReorderPointsFromTable applies CalculateReorderPoint to every row.
// An empty safetyStockColumn means no safety stock.
func CalculateReorderPointsFromTable(table *entities.Table, dailyDemandColumn, leadTimeColumn, safetyStockColumn string) ([]float64, error) {
	required := []string{dailyDemandColumn, leadTimeColumn}
	if safetyStockColumn != "" {
		required = append(required, safetyStockColumn)
	}
	if err := table.RequireColumns(required...); err != nil {
		return nil, err
	}

	demand, err := table.Float64Column(dailyDemandColumn)
	if err != nil {
		return nil, err
	}
	leadTime, err := table.Float64Column(leadTimeColumn)
	if err != nil {
		return nil, err
	}
	safetyStock := make([]float64, table.Len())
	if safetyStockColumn != "" {
		if safetyStock, err = table.Float64Column(safetyStockColumn); err != nil {
			return nil, err
		}
	}

	points := make([]float64, table.Len())
	for i := range points {
		rop, err := CalculateReorderPoint(demand[i], leadTime[i], safetyStock[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		points[i] = rop
	}
	return points, nil
}
