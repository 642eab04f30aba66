package forecasting

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// Initial smoothing parameters for the search
const (
	initialAlpha = 0.5
	initialBeta  = 0.1
	initialGamma = 0.1
)

// Model is a Holt-Winters model with additive trend and optional additive season
type Model struct {
	SeasonalPeriods int     // 0 disables the seasonal component
	Alpha           float64 // level smoothing
	Beta            float64 // trend smoothing
	Gamma           float64 // seasonal smoothing, 0 when not seasonal
	SSE             float64 // one-step-ahead sum of squared errors at the fitted parameters

	fitted bool
	n      int
	final  smoothingState
}

type smoothingState struct {
	level  float64
	trend  float64
	season []float64
	fitted []float64
	sse    float64
}

// New creates a model; seasonalPeriods of 0 means no seasonality
func New(seasonalPeriods int) *Model {
	return &Model{SeasonalPeriods: seasonalPeriods}
}

// Fit estimates the smoothing parameters for values
func (m *Model) Fit(values []float64) error {
	if m.SeasonalPeriods < 0 || m.SeasonalPeriods == 1 {
		return fmt.Errorf("%w: seasonal_periods must be 0 or at least 2, got %d",
			entities.ErrValidation, m.SeasonalPeriods)
	}
	if len(values) < 2 {
		return fmt.Errorf("%w: at least 2 observations are required to fit a trend, got %d",
			entities.ErrValidation, len(values))
	}
	if m.seasonal() && len(values) < 2*m.SeasonalPeriods {
		return fmt.Errorf("%w: at least %d observations (two full cycles) are required for seasonal_periods=%d, got %d",
			entities.ErrValidation, 2*m.SeasonalPeriods, m.SeasonalPeriods, len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: observation %d is not a finite number", entities.ErrType, i)
		}
	}

	initial := []float64{logit(initialAlpha), logit(initialBeta)}
	if m.seasonal() {
		initial = append(initial, logit(initialGamma))
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			alpha, beta, gamma := m.unpack(x)
			sse := m.smooth(values, alpha, beta, gamma).sse
			if math.IsNaN(sse) || math.IsInf(sse, 0) {
				return math.MaxFloat64
			}
			return sse
		},
	}

	result, err := optimize.Minimize(problem, initial, nil, &optimize.NelderMead{})
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrModelFit, err)
	}
	if result == nil {
		return fmt.Errorf("%w: optimizer returned no result", entities.ErrModelFit)
	}

	m.Alpha, m.Beta, m.Gamma = m.unpack(result.X)
	m.final = m.smooth(values, m.Alpha, m.Beta, m.Gamma)
	if math.IsNaN(m.final.sse) || math.IsInf(m.final.sse, 0) {
		return fmt.Errorf("%w: sum of squared errors is not finite", entities.ErrModelFit)
	}

	m.SSE = m.final.sse
	m.n = len(values)
	m.fitted = true
	return nil
}

// Predict returns forecasts for the next steps periods
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before prediction")
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: steps must be at least 1, got %d", entities.ErrValidation, steps)
	}

	forecasts := make([]float64, steps)
	for h := 1; h <= steps; h++ {
		v := m.final.level + float64(h)*m.final.trend
		if m.seasonal() {
			v += m.final.season[(m.n+h-1)%m.SeasonalPeriods]
		}
		forecasts[h-1] = v
	}
	return forecasts, nil
}

// FittedValues returns the one-step-ahead predictions for the training data
func (m *Model) FittedValues() []float64 {
	if !m.fitted {
		return nil
	}
	return append([]float64(nil), m.final.fitted...)
}

func (m *Model) seasonal() bool {
	return m.SeasonalPeriods > 1
}

func (m *Model) unpack(x []float64) (alpha, beta, gamma float64) {
	alpha, beta = sigmoid(x[0]), sigmoid(x[1])
	if m.seasonal() {
		gamma = sigmoid(x[2])
	}
	return alpha, beta, gamma
}

// smooth runs the recursions once. The initial state is positioned just before
// the first observation.
func (m *Model) smooth(y []float64, alpha, beta, gamma float64) smoothingState {
	st := m.initialState(y)

	period := m.SeasonalPeriods
	for t, obs := range y {
		seasonal := 0.0
		if m.seasonal() {
			seasonal = st.season[t%period]
		}

		prediction := st.level + st.trend + seasonal
		residual := obs - prediction
		st.fitted[t] = prediction
		st.sse += residual * residual

		level := alpha*(obs-seasonal) + (1-alpha)*(st.level+st.trend)
		trend := beta*(level-st.level) + (1-beta)*st.trend
		if m.seasonal() {
			st.season[t%period] = gamma*(obs-st.level-st.trend) + (1-gamma)*seasonal
		}
		st.level, st.trend = level, trend
	}
	return st
}

func (m *Model) initialState(y []float64) smoothingState {
	st := smoothingState{fitted: make([]float64, len(y))}

	if !m.seasonal() {
		st.trend = y[1] - y[0]
		st.level = y[0] - st.trend
		return st
	}

	period := m.SeasonalPeriods
	firstCycle := stat.Mean(y[:period], nil)
	secondCycle := stat.Mean(y[period:2*period], nil)

	st.level = firstCycle
	st.trend = (secondCycle - firstCycle) / float64(period)
	st.season = make([]float64, period)
	for i := range st.season {
		st.season[i] = y[i] - firstCycle
	}
	return st
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}
