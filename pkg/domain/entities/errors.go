package entities

import "errors"

// Error categories returned by every analysis. Callers match them with errors.Is;
// the wrapped message names the offending path, member, column or parameter.
var (
	// ErrMissingPath is returned when an archive path does not exist
	ErrMissingPath = errors.New("path does not exist")
	// ErrMissingMember is returned when a requested file is absent from an archive
	ErrMissingMember = errors.New("dataset not found")
	// ErrMissingColumn is returned when a required column is absent from a table
	ErrMissingColumn = errors.New("column not found")
	// ErrValidation is returned when a parameter violates its sign or range constraint
	ErrValidation = errors.New("validation failed")
	// ErrType is returned when a value cannot be interpreted as the required type,
	// including series that are not chronologically indexed
	ErrType = errors.New("type error")
	// ErrModelFit is returned when a forecasting model cannot be fitted
	ErrModelFit = errors.New("model fit failed")
)
