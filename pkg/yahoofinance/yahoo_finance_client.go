package yahoofinance

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

// Bar is one raw daily observation from the Yahoo Finance chart API.
// AdjClose can be zero when the feed omits it; the transform layer
// applies the close fallback.
type Bar struct {
	Date     time.Time
	Open     decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Close    decimal.Decimal
	AdjClose decimal.Decimal
	Volume   int64
}

type Client struct{}

// GetDailyBars fetches daily OHLCV bars for a ticker over [start, end].
func (c Client) GetDailyBars(ticker string, start, end time.Time) ([]Bar, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   ticker,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	bars := []Bar{}
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, Bar{
			Date:     time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:     b.Open,
			High:     b.High,
			Low:      b.Low,
			Close:    b.Close,
			AdjClose: b.AdjClose,
			Volume:   int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get daily bars for %s: %w", ticker, err)
	}

	return bars, nil
}
