package repository

import (
	"database/sql"
	"fmt"
	"montesim/internal/db/models/postgres/public/model"
	"montesim/internal/db/models/postgres/public/table"
	"montesim/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
)

type StockDataRepository interface {
	Add([]model.StockData) error
	List(ticker string, start, end time.Time) (*domain.PriceSeries, error)
	GetLatest(ticker string) (*domain.PriceBar, error)
	ListTickers() ([]string, error)
}

type stockDataRepositoryHandler struct {
	Db *sql.DB
}

func NewStockDataRepository(db *sql.DB) StockDataRepository {
	return stockDataRepositoryHandler{db}
}

func (h stockDataRepositoryHandler) Add(rows []model.StockData) error {
	if len(rows) == 0 {
		return nil
	}

	query := table.StockData.
		INSERT(table.StockData.MutableColumns).
		MODELS(rows).
		ON_CONFLICT(
			table.StockData.Ticker, table.StockData.Date,
		).DO_UPDATE(
		postgres.SET(
			table.StockData.Open.SET(table.StockData.EXCLUDED.Open),
			table.StockData.High.SET(table.StockData.EXCLUDED.High),
			table.StockData.Low.SET(table.StockData.EXCLUDED.Low),
			table.StockData.Close.SET(table.StockData.EXCLUDED.Close),
			table.StockData.AdjClose.SET(table.StockData.EXCLUDED.AdjClose),
			table.StockData.Volume.SET(table.StockData.EXCLUDED.Volume),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add stock data to db: %w", err)
	}

	return nil
}

func (h stockDataRepositoryHandler) List(ticker string, start, end time.Time) (*domain.PriceSeries, error) {
	query := table.StockData.
		SELECT(table.StockData.AllColumns).
		WHERE(
			postgres.AND(
				table.StockData.Ticker.EQ(postgres.String(ticker)),
				table.StockData.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.StockData.Date.ASC())

	result := []model.StockData{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock data for %s: %w", ticker, err)
	}

	series := &domain.PriceSeries{Ticker: ticker}
	for _, row := range result {
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

	return series, nil
}

func (h stockDataRepositoryHandler) GetLatest(ticker string) (*domain.PriceBar, error) {
	query := table.StockData.
		SELECT(table.StockData.AllColumns).
		WHERE(table.StockData.Ticker.EQ(postgres.String(ticker))).
		ORDER_BY(table.StockData.Date.DESC()).
		LIMIT(1)

	result := model.StockData{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price for %s: %w", ticker, err)
	}

	return &domain.PriceBar{
		Ticker:   result.Ticker,
		Date:     result.Date,
		Open:     result.Open,
		High:     result.High,
		Low:      result.Low,
		Close:    result.Close,
		AdjClose: result.AdjClose,
		Volume:   result.Volume,
	}, nil
}

func (h stockDataRepositoryHandler) ListTickers() ([]string, error) {
	query := table.StockData.
		SELECT(table.StockData.Ticker).
		DISTINCT().
		ORDER_BY(table.StockData.Ticker.ASC())

	q, args := query.Sql()

	rows, err := h.Db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var ticker string
		if err := rows.Scan(&ticker); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, ticker)
	}

	return out, nil
}
