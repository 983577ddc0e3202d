package domain

import "github.com/google/uuid"

// ReturnParameters are the per-ticker GBM inputs derived once from a
// historical series. Immutable after estimation.
type ReturnParameters struct {
	Ticker              string
	MeanDailyLogReturn  float64
	DailyVolatility     float64
	AnnualizationFactor int
}

// SimulatedPath is one simulated price trajectory. Values[0] is the
// starting price; Values[1..HorizonDays] are the simulated daily levels,
// all strictly positive.
type SimulatedPath struct {
	TickerIndex int
	PathIndex   int
	Values      []float64
}

// SimulationYearRecord is one year-block of one simulated path, shaped
// to match the simulation table. Probability is nil until the
// probability estimator fills it, then the record is immutable.
type SimulationYearRecord struct {
	Ticker    string
	RunID     uuid.UUID
	PathIndex int
	Year      int // 1-based offset from the simulation start
	// Days is the number of simulated days covered by this block. A
	// value below the run's daysPerYear marks a partial final year.
	Days             int
	StartingValue    float64
	EndingValue      float64
	AnnualReturn     float64
	CumulativeReturn float64
	Volatility       float64
	Probability      *float64
}

// Partial reports whether the record covers fewer days than a full
// simulated year.
func (r SimulationYearRecord) Partial(daysPerYear int) bool {
	return r.Days < daysPerYear
}
