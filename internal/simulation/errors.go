package simulation

import "fmt"

// InvalidParameterError reports a non-positive simulator input. The
// parameter name and value are carried so callers can log and abort the
// offending ticker without touching sibling runs.
type InvalidParameterError struct {
	Ticker    string
	Parameter string
	Value     float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid simulation parameter for %s: %s must be positive, got %v", e.Ticker, e.Parameter, e.Value)
}

// EmptyGroupError indicates a (ticker, year) group with no records
// reached the probability estimator. This is an internal invariant
// violation, not a user error.
type EmptyGroupError struct {
	Ticker string
	Year   int
}

func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("empty simulation year group for %s year %d", e.Ticker, e.Year)
}
