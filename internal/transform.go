package internal

import (
	"fmt"
	"montesim/internal/db/models/postgres/public/model"
	"montesim/internal/domain"
	"montesim/pkg/yahoofinance"
	"time"
)

// TransformBars reshapes raw provider bars into canonical stock_data
// rows. It enforces the canonical invariants: dates strictly ascending,
// no duplicate (ticker, date), all prices positive. When the provider
// omits adjusted close, close is used in its place.
func TransformBars(ticker string, bars []yahoofinance.Bar) ([]model.StockData, error) {
	rows := make([]model.StockData, 0, len(bars))

	var lastDate time.Time
	for _, b := range bars {
		date := b.Date.Truncate(24 * time.Hour)
		if !lastDate.IsZero() && !date.After(lastDate) {
			return nil, fmt.Errorf("bars for %s are not strictly ascending: %s follows %s", ticker, date.Format(time.DateOnly), lastDate.Format(time.DateOnly))
		}
		lastDate = date

		adjClose := b.AdjClose
		if adjClose.IsZero() {
			adjClose = b.Close
		}

		row := model.StockData{
			Ticker:   ticker,
			Date:     date,
			Open:     b.Open.InexactFloat64(),
			High:     b.High.InexactFloat64(),
			Low:      b.Low.InexactFloat64(),
			Close:    b.Close.InexactFloat64(),
			AdjClose: adjClose.InexactFloat64(),
			Volume:   b.Volume,
		}

		if row.Open <= 0 || row.High <= 0 || row.Low <= 0 || row.Close <= 0 || row.AdjClose <= 0 {
			// zero/negative prices are feed glitches, not observations
			continue
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// PriceSeriesFromRows converts canonical rows into the in-memory series
// the simulation core consumes.
func PriceSeriesFromRows(ticker string, rows []model.StockData) domain.PriceSeries {
	series := domain.PriceSeries{Ticker: ticker}
	for _, row := range rows {
		series.Bars = append(series.Bars, domain.PriceBar{
			Ticker:   row.Ticker,
			Date:     row.Date,
			Open:     row.Open,
			High:     row.High,
			Low:      row.Low,
			Close:    row.Close,
			AdjClose: row.AdjClose,
			Volume:   row.Volume,
		})
	}
	return series
}
