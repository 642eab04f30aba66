package forecasting

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

func monthEnds(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = addMonths(start, i, true)
	}
	return out
}

func days(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func TestForecast_ReturnsRequestedHorizon(t *testing.T) {
	values := make([]float64, 12)
	for i := range values {
		values[i] = float64(i + 1)
	}
	series, err := entities.NewDemandSeries(monthEnds(time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), 12), values)
	require.NoError(t, err)

	forecast, err := Forecast(series, 3, Options{})
	require.NoError(t, err)

	require.Len(t, forecast.Values, 3)
	require.Len(t, forecast.Timestamps, 3)
	for i, expected := range []float64{13, 14, 15} {
		assert.InDelta(t, expected, forecast.Values[i], 1e-6)
	}
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), forecast.Timestamps[0])
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), forecast.Timestamps[1])
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), forecast.Timestamps[2])
}

func TestForecast_ShortDailySeries(t *testing.T) {
	series, err := entities.NewDemandSeries(days(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 3), []float64{1, 2, 3})
	require.NoError(t, err)

	forecast, err := Forecast(series, 2, Options{})
	require.NoError(t, err)
	assert.Len(t, forecast.Values, 2)
	assert.Equal(t, time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), forecast.Timestamps[0])
}

func TestForecast_ConstantSeries(t *testing.T) {
	values := []float64{7, 7, 7, 7, 7, 7}
	series, err := entities.NewDemandSeries(days(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), len(values)), values)
	require.NoError(t, err)

	forecast, err := Forecast(series, 4, Options{})
	require.NoError(t, err)
	for _, v := range forecast.Values {
		assert.InDelta(t, 7, v, 1e-9)
	}
}

func TestForecast_Seasonal(t *testing.T) {
	pattern := []float64{5, -2, -5, 2}
	truth := func(i int) float64 { return 10 + 0.5*float64(i) + pattern[i%4] }

	n := 40
	values := make([]float64, n)
	for i := range values {
		values[i] = truth(i)
	}
	series, err := entities.NewDemandSeries(days(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), n), values)
	require.NoError(t, err)

	forecast, err := Forecast(series, 8, Options{SeasonalPeriods: 4})
	require.NoError(t, err)
	require.Len(t, forecast.Values, 8)
	for h, v := range forecast.Values {
		assert.InDelta(t, truth(n+h), v, 1.0, "step %d", h+1)
	}
}

func TestForecast_Errors(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ordered, err := entities.NewDemandSeries(days(start, 4), []float64{1, 2, 3, 4})
	require.NoError(t, err)

	testCases := []struct {
		name      string
		series    *entities.DemandSeries
		periods   int
		opts      Options
		expectErr error
	}{
		{"empty series", &entities.DemandSeries{}, 3, Options{}, entities.ErrValidation},
		{"nil series", nil, 3, Options{}, entities.ErrValidation},
		{
			"unordered timestamps",
			&entities.DemandSeries{Timestamps: []time.Time{start.AddDate(0, 0, 1), start}, Values: []float64{1, 2}},
			3, Options{}, entities.ErrType,
		},
		{"zero periods", ordered, 0, Options{}, entities.ErrValidation},
		{
			"single observation",
			&entities.DemandSeries{Timestamps: []time.Time{start}, Values: []float64{5}},
			3, Options{}, entities.ErrValidation,
		},
		{"too short for season", ordered, 3, Options{SeasonalPeriods: 3}, entities.ErrValidation},
		{"seasonal period of one", ordered, 3, Options{SeasonalPeriods: 1}, entities.ErrValidation},
		{
			"non-finite value",
			&entities.DemandSeries{Timestamps: days(start, 3), Values: []float64{1, math.NaN(), 3}},
			3, Options{}, entities.ErrType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Forecast(tc.series, tc.periods, tc.opts)
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestModel_PredictBeforeFit(t *testing.T) {
	_, err := New(0).Predict(3)
	assert.EqualError(t, err, "model must be fitted before prediction")
	assert.Nil(t, New(0).FittedValues())
}

func TestModel_FitParameters(t *testing.T) {
	model := New(0)
	require.NoError(t, model.Fit([]float64{3, 5, 4, 6, 5, 7, 6, 8}))

	assert.Greater(t, model.Alpha, 0.0)
	assert.Less(t, model.Alpha, 1.0)
	assert.Greater(t, model.Beta, 0.0)
	assert.Less(t, model.Beta, 1.0)
	assert.Zero(t, model.Gamma)
	assert.GreaterOrEqual(t, model.SSE, 0.0)
	assert.Len(t, model.FittedValues(), 8)

	_, err := model.Predict(0)
	assert.ErrorIs(t, err, entities.ErrValidation)
}
