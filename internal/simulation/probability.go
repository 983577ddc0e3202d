package simulation

import "montesim/internal/domain"

// FillProbabilities computes, per year group across the whole ensemble,
// the empirical probability that a path's ending value meets or exceeds
// targetValue, and writes it onto every record in the group. The value
// is a population statistic: all records sharing a (ticker, year) pair
// get the same probability.
func FillProbabilities(records []domain.SimulationYearRecord, targetValue float64) error {
	if len(records) == 0 {
		return &EmptyGroupError{Year: 0}
	}

	maxYear := 0
	for i := range records {
		if records[i].Year > maxYear {
			maxYear = records[i].Year
		}
	}

	total := make([]int, maxYear+1)
	hits := make([]int, maxYear+1)
	for i := range records {
		total[records[i].Year]++
		if records[i].EndingValue >= targetValue {
			hits[records[i].Year]++
		}
	}

	probabilities := make([]float64, maxYear+1)
	for year := 1; year <= maxYear; year++ {
		if total[year] == 0 {
			return &EmptyGroupError{Ticker: records[0].Ticker, Year: year}
		}
		probabilities[year] = float64(hits[year]) / float64(total[year])
	}

	for i := range records {
		p := probabilities[records[i].Year]
		records[i].Probability = &p
	}

	return nil
}
