package entities

import (
	"fmt"
	"time"
)

// DemandSeries is an ordered sequence of demand observations indexed by timestamp
type DemandSeries struct {
	Name       string
	Timestamps []time.Time
	Values     []float64
}

// NewDemandSeries creates a DemandSeries with explicit timestamps
func NewDemandSeries(timestamps []time.Time, values []float64) (*DemandSeries, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("timestamps and values must have the same length, got %d and %d",
			len(timestamps), len(values))
	}
	return &DemandSeries{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the number of observations
func (s *DemandSeries) Len() int {
	return len(s.Values)
}

// Validate checks that the series is non-empty and chronologically indexed
func (s *DemandSeries) Validate() error {
	if s == nil || len(s.Values) == 0 {
		return fmt.Errorf("%w: series must contain at least one observation", ErrValidation)
	}
	if len(s.Timestamps) != len(s.Values) {
		return fmt.Errorf("%w: series must be indexed by timestamps, got %d timestamps for %d values",
			ErrType, len(s.Timestamps), len(s.Values))
	}
	for i := 1; i < len(s.Timestamps); i++ {
		if !s.Timestamps[i].After(s.Timestamps[i-1]) {
			return fmt.Errorf("%w: timestamps must be strictly increasing, %s at position %d follows %s",
				ErrType,
				s.Timestamps[i].Format(time.RFC3339),
				i,
				s.Timestamps[i-1].Format(time.RFC3339))
		}
	}
	return nil
}
