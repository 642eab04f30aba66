package services

import (
	"time"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// DailyDemand sums quantityColumn per calendar day of dateColumn. The series
// covers every day from the first to the last transaction; days without
// activity are zero.
func DailyDemand(table *entities.Table, dateColumn, quantityColumn string) (*entities.DemandSeries, error) {
	if err := table.RequireColumns(dateColumn, quantityColumn); err != nil {
		return nil, err
	}

	dates, err := table.DateColumn(dateColumn)
	if err != nil {
		return nil, err
	}
	quantities, err := table.Float64Column(quantityColumn)
	if err != nil {
		return nil, err
	}

	series := &entities.DemandSeries{Name: quantityColumn}
	if len(dates) == 0 {
		return series, nil
	}

	totals := make(map[time.Time]float64, len(dates))
	first, last := dates[0], dates[0]
	for i, day := range dates {
		totals[day] += quantities[i]
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		series.Timestamps = append(series.Timestamps, day)
		series.Values = append(series.Values, totals[day])
	}
	return series, nil
}
