package simulation

import (
	"fmt"
	"math"
	"montesim/internal/domain"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// AggregateYears reduces one simulated path into per-year records. The
// path is split into contiguous daysPerYear blocks; a trailing partial
// block is kept and marked via the record's Days field rather than
// dropped. Deterministic and pure.
func AggregateYears(path domain.SimulatedPath, ticker string, runID uuid.UUID, daysPerYear int) ([]domain.SimulationYearRecord, error) {
	if daysPerYear <= 0 {
		return nil, &InvalidParameterError{Ticker: ticker, Parameter: "daysPerYear", Value: float64(daysPerYear)}
	}
	if len(path.Values) < 2 {
		return nil, fmt.Errorf("cannot aggregate path for %s: path has %d values", ticker, len(path.Values))
	}

	horizonDays := len(path.Values) - 1
	numYears := (horizonDays + daysPerYear - 1) / daysPerYear
	pathStart := path.Values[0]

	records := make([]domain.SimulationYearRecord, 0, numYears)
	for year := 1; year <= numYears; year++ {
		startIdx := (year - 1) * daysPerYear
		endIdx := year * daysPerYear
		if endIdx > horizonDays {
			endIdx = horizonDays
		}

		startValue := path.Values[startIdx]
		endValue := path.Values[endIdx]
		days := endIdx - startIdx

		volatility, err := blockVolatility(path.Values[startIdx:endIdx+1], daysPerYear)
		if err != nil {
			return nil, fmt.Errorf("failed to compute year %d volatility for %s: %w", year, ticker, err)
		}

		records = append(records, domain.SimulationYearRecord{
			Ticker:           ticker,
			RunID:            runID,
			PathIndex:        path.PathIndex,
			Year:             year,
			Days:             days,
			StartingValue:    startValue,
			EndingValue:      endValue,
			AnnualReturn:     endValue/startValue - 1,
			CumulativeReturn: endValue/pathStart - 1,
			Volatility:       volatility,
		})
	}

	return records, nil
}

// blockVolatility is the annualized sample stdev of the block's daily
// log returns. A one-day partial block has no sample variance; it
// reports zero and the caller discounts it via the Days field.
func blockVolatility(values []float64, daysPerYear int) (float64, error) {
	if len(values) < 3 {
		return 0, nil
	}

	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		returns = append(returns, math.Log(values[i]/values[i-1]))
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, err
	}

	return stdev * math.Sqrt(float64(daysPerYear)), nil
}
