package internal

import (
	"fmt"
	"montesim/internal/logger"
	"montesim/internal/repository"
	"time"

	"montesim/pkg/yahoofinance"
)

// MarketDataClient is the extract boundary. The Yahoo Finance client is
// the production implementation; tests substitute their own.
type MarketDataClient interface {
	GetDailyBars(ticker string, start, end time.Time) ([]yahoofinance.Bar, error)
}

// IngestPrices pulls daily bars for one ticker, transforms them into
// canonical rows and upserts them.
func IngestPrices(
	client MarketDataClient,
	stockDataRepository repository.StockDataRepository,
	ticker string,
	start, end time.Time,
) error {
	bars, err := client.GetDailyBars(ticker, start, end)
	if err != nil {
		return fmt.Errorf("failed to fetch bars for %s: %w", ticker, err)
	}

	rows, err := TransformBars(ticker, bars)
	if err != nil {
		return fmt.Errorf("failed to transform bars for %s: %w", ticker, err)
	}

	if err := stockDataRepository.Add(rows); err != nil {
		return err
	}

	return nil
}

// UpdateAllPrices ingests every requested ticker. One ticker's failure
// does not abort the others; the first error is returned after all
// tickers have been attempted.
func UpdateAllPrices(
	client MarketDataClient,
	stockDataRepository repository.StockDataRepository,
	tickers []string,
	start, end time.Time,
) error {
	log := logger.New()

	errors := []error{}
	for _, ticker := range tickers {
		err := IngestPrices(client, stockDataRepository, ticker, start, end)
		if err != nil {
			err = fmt.Errorf("failed to ingest historical prices for %s: %w", ticker, err)
			log.Error(err)
			errors = append(errors, err)
		} else {
			log.Infof("ingested %s", ticker)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to update %d/%d tickers. first err: %w", len(errors), len(tickers), errors[0])
	}

	return nil
}
