package calculator

import (
	"fmt"
	"math"
	"montesim/internal/domain"

	"github.com/montanaflynn/stats"
)

// TradingDaysPerYear is the default annualization factor for daily bars.
const TradingDaysPerYear = 252

// InsufficientDataError indicates the historical series is too short to
// estimate return parameters.
type InsufficientDataError struct {
	Ticker       string
	Observations int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: need at least 2 observations, got %d", e.Ticker, e.Observations)
}

// DegenerateSeriesError indicates the historical returns have zero
// variance, e.g. a constant price series. Callers decide whether zero
// volatility is acceptable for their use case.
type DegenerateSeriesError struct {
	Ticker string
}

func (e *DegenerateSeriesError) Error() string {
	return fmt.Sprintf("degenerate series for %s: historical returns have zero variance", e.Ticker)
}

// DailyLogReturns computes ln(p_i / p_{i-1}) over the adjusted close
// column of the series.
func DailyLogReturns(series domain.PriceSeries) []float64 {
	prices := series.AdjCloses()
	if len(prices) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns = append(returns, math.Log(prices[i]/prices[i-1]))
	}
	return returns
}

// EstimateReturnParameters derives GBM drift and volatility inputs from
// a historical series. Pure function of its input.
func EstimateReturnParameters(series domain.PriceSeries, annualizationFactor int) (*domain.ReturnParameters, error) {
	if annualizationFactor <= 0 {
		annualizationFactor = TradingDaysPerYear
	}
	if len(series.Bars) < 2 {
		return nil, &InsufficientDataError{Ticker: series.Ticker, Observations: len(series.Bars)}
	}

	returns := DailyLogReturns(series)
	if len(returns) < 2 {
		// a single return observation has no sample variance
		return nil, &DegenerateSeriesError{Ticker: series.Ticker}
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean daily return for %s: %w", series.Ticker, err)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute return stdev for %s: %w", series.Ticker, err)
	}
	if stdev == 0 {
		return nil, &DegenerateSeriesError{Ticker: series.Ticker}
	}

	return &domain.ReturnParameters{
		Ticker:              series.Ticker,
		MeanDailyLogReturn:  mean,
		DailyVolatility:     stdev,
		AnnualizationFactor: annualizationFactor,
	}, nil
}
