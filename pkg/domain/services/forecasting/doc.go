// Package forecasting projects demand series with Holt-Winters exponential
// smoothing.
//
// The model always carries an additive trend. An additive seasonal component is
// added when a seasonal cycle length is given:
//
//	forecast, err := forecasting.Forecast(series, 3, forecasting.Options{})
//
//	// weekly cycle on daily data
//	forecast, err := forecasting.Forecast(series, 14, forecasting.Options{SeasonalPeriods: 7})
//
// Smoothing parameters are chosen by minimizing the one-step-ahead sum of
// squared errors with a Nelder-Mead search. The returned series continues the
// input's cadence: monthly inputs are extended month by month, anything else by
// the last observed spacing.
package forecasting
