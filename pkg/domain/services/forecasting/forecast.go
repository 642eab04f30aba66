package forecasting

import (
	"fmt"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// Options configures Forecast
type Options struct {
	// SeasonalPeriods is the length of the seasonal cycle; 0 fits no seasonality
	SeasonalPeriods int
}

// Forecast fits a Holt-Winters model to series and returns the next periods
// values, timestamped to continue the series' cadence.
func Forecast(series *entities.DemandSeries, periods int, opts Options) (*entities.DemandSeries, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}
	if periods < 1 {
		return nil, fmt.Errorf("%w: periods must be positive, got %d", entities.ErrValidation, periods)
	}

	model := New(opts.SeasonalPeriods)
	if err := model.Fit(series.Values); err != nil {
		return nil, err
	}

	values, err := model.Predict(periods)
	if err != nil {
		return nil, err
	}

	return &entities.DemandSeries{
		Name:       series.Name,
		Timestamps: NextTimestamps(series.Timestamps, periods),
		Values:     values,
	}, nil
}
