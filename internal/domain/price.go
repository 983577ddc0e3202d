package domain

import "time"

// PriceBar is one canonical daily observation for a ticker, as produced
// by the transform layer. AdjClose is the price used for all return
// computation downstream.
type PriceBar struct {
	Ticker   string
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   int64
}

// PriceSeries holds one ticker's daily bars, dates strictly ascending.
type PriceSeries struct {
	Ticker string
	Bars   []PriceBar
}

// AdjCloses returns the adjusted close column in date order.
func (s PriceSeries) AdjCloses() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.AdjClose
	}
	return out
}

// Latest returns the most recent bar, or false if the series is empty.
func (s PriceSeries) Latest() (PriceBar, bool) {
	if len(s.Bars) == 0 {
		return PriceBar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}
