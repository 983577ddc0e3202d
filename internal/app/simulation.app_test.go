package app

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"montesim/internal/db/models/postgres/public/model"
	"montesim/internal/domain"
	"montesim/internal/repository"
	"montesim/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type priceFixtureRow struct {
	Ticker   string  `csv:"ticker"`
	Date     string  `csv:"date"`
	Open     float64 `csv:"open"`
	High     float64 `csv:"high"`
	Low      float64 `csv:"low"`
	Close    float64 `csv:"close"`
	AdjClose float64 `csv:"adj_close"`
	Volume   int64   `csv:"volume"`
}

func loadPriceFixture(t *testing.T) map[string]*domain.PriceSeries {
	t.Helper()

	f, err := os.Open("testdata/prices.csv")
	require.NoError(t, err)
	defer f.Close()

	rows := []priceFixtureRow{}
	require.NoError(t, gocsv.UnmarshalFile(f, &rows))

	out := map[string]*domain.PriceSeries{}
	for _, row := range rows {
		date, err := util.ParseDate(row.Date)
		require.NoError(t, err)

		if _, ok := out[row.Ticker]; !ok {
			out[row.Ticker] = &domain.PriceSeries{Ticker: row.Ticker}
		}
		out[row.Ticker].Bars = append(out[row.Ticker].Bars, domain.PriceBar{
			Ticker:   row.Ticker,
			Date:     date,
			Open:     row.Open,
			High:     row.High,
			Low:      row.Low,
			Close:    row.Close,
			AdjClose: row.AdjClose,
			Volume:   row.Volume,
		})
	}

	return out
}

type mockStockDataRepository struct {
	series map[string]*domain.PriceSeries
}

func (m mockStockDataRepository) Add([]model.StockData) error { return nil }

func (m mockStockDataRepository) List(ticker string, start, end time.Time) (*domain.PriceSeries, error) {
	series, ok := m.series[ticker]
	if !ok {
		return &domain.PriceSeries{Ticker: ticker}, nil
	}
	out := &domain.PriceSeries{Ticker: ticker}
	for _, b := range series.Bars {
		if !b.Date.Before(start) && !b.Date.After(end) {
			out.Bars = append(out.Bars, b)
		}
	}
	return out, nil
}

func (m mockStockDataRepository) GetLatest(ticker string) (*domain.PriceBar, error) {
	series, ok := m.series[ticker]
	if !ok || len(series.Bars) == 0 {
		return nil, fmt.Errorf("no prices for %s", ticker)
	}
	bar := series.Bars[len(series.Bars)-1]
	return &bar, nil
}

func (m mockStockDataRepository) ListTickers() ([]string, error) {
	out := []string{}
	for ticker := range m.series {
		out = append(out, ticker)
	}
	return out, nil
}

type mockSimulationRepository struct {
	added []*model.Simulation
}

func (m *mockSimulationRepository) AddMany(in []*model.Simulation) error {
	m.added = append(m.added, in...)
	return nil
}

func (m *mockSimulationRepository) List(runID uuid.UUID, ticker string) ([]model.Simulation, error) {
	out := []model.Simulation{}
	for _, row := range m.added {
		if row.RunID == runID && row.Ticker == ticker {
			out = append(out, *row)
		}
	}
	return out, nil
}

type mockSimulationRunRepository struct {
	runs []model.SimulationRun
}

func (m *mockSimulationRunRepository) Add(run model.SimulationRun) error {
	m.runs = append(m.runs, run)
	return nil
}

func (m *mockSimulationRunRepository) Get(runID uuid.UUID) (*model.SimulationRun, error) {
	for _, run := range m.runs {
		if run.RunID == runID {
			return &run, nil
		}
	}
	return nil, fmt.Errorf("run %s not found", runID)
}

func newTestHandler(t *testing.T) (SimulationHandler, *mockSimulationRepository, *mockSimulationRunRepository) {
	simRepo := &mockSimulationRepository{}
	runRepo := &mockSimulationRunRepository{}
	handler := SimulationHandler{
		StockDataRepository:     mockStockDataRepository{series: loadPriceFixture(t)},
		SimulationRepository:    simRepo,
		SimulationRunRepository: runRepo,
	}
	return handler, simRepo, runRepo
}

var _ repository.StockDataRepository = mockStockDataRepository{}
var _ repository.SimulationRepository = &mockSimulationRepository{}
var _ repository.SimulationRunRepository = &mockSimulationRunRepository{}

func TestSimulationHandler_Run(t *testing.T) {
	seed := int64(7)
	baseInput := SimulationInput{
		Tickers:       []string{"AAPL", "MSFT"},
		Years:         1,
		NumPaths:      4,
		DaysPerYear:   10,
		Seed:          &seed,
		TargetValue:   0,
		LookbackStart: util.NewDate(2024, 1, 1),
		LookbackEnd:   util.NewDate(2024, 1, 31),
	}

	t.Run("persists records for every ticker", func(t *testing.T) {
		handler, simRepo, runRepo := newTestHandler(t)

		report, err := handler.Run(context.Background(), baseInput)
		require.NoError(t, err)
		require.Empty(t, report.Errors)
		require.Equal(t, int64(7), report.Seed)
		require.Equal(t, map[string]int{"AAPL": 4, "MSFT": 4}, report.RecordsByTick)

		// 2 tickers x 4 paths x 1 year
		require.Len(t, simRepo.added, 8)
		for _, row := range simRepo.added {
			require.Equal(t, report.RunID, row.RunID)
			require.Equal(t, int32(1), row.Year)
			require.Equal(t, int32(10), row.Days)
			require.Greater(t, row.StartingValue, 0.0)
			require.Greater(t, row.EndingValue, 0.0)
			require.NotNil(t, row.Probability)
			// every ending value clears a zero threshold
			require.Equal(t, 1.0, *row.Probability)
		}

		require.Len(t, runRepo.runs, 1)
		require.Equal(t, int64(7), runRepo.runs[0].Seed)
		require.Equal(t, int32(4), runRepo.runs[0].NumPaths)
		require.Equal(t, int32(10), runRepo.runs[0].HorizonDays)
	})

	t.Run("reproducible across runs with same seed", func(t *testing.T) {
		handler1, simRepo1, _ := newTestHandler(t)
		handler2, simRepo2, _ := newTestHandler(t)

		_, err := handler1.Run(context.Background(), baseInput)
		require.NoError(t, err)
		_, err = handler2.Run(context.Background(), baseInput)
		require.NoError(t, err)

		require.Len(t, simRepo2.added, len(simRepo1.added))
		for i := range simRepo1.added {
			require.Equal(t, simRepo1.added[i].EndingValue, simRepo2.added[i].EndingValue)
			require.Equal(t, simRepo1.added[i].Volatility, simRepo2.added[i].Volatility)
		}
	})

	t.Run("ticker failure does not abort siblings", func(t *testing.T) {
		handler, simRepo, _ := newTestHandler(t)

		input := baseInput
		input.Tickers = []string{"AAPL", "UNKNOWN"}

		report, err := handler.Run(context.Background(), input)
		require.NoError(t, err)
		require.Len(t, report.Errors, 1)
		require.Contains(t, report.Errors[0], "UNKNOWN")
		require.Equal(t, map[string]int{"AAPL": 4}, report.RecordsByTick)
		require.Len(t, simRepo.added, 4)
	})

	t.Run("all tickers failing is an error", func(t *testing.T) {
		handler, _, _ := newTestHandler(t)

		input := baseInput
		input.Tickers = []string{"UNKNOWN1", "UNKNOWN2"}

		_, err := handler.Run(context.Background(), input)
		require.ErrorContains(t, err, "all 2 tickers failed")
	})

	t.Run("unseeded run records a replayable seed", func(t *testing.T) {
		handler, _, runRepo := newTestHandler(t)

		input := baseInput
		input.Seed = nil

		report, err := handler.Run(context.Background(), input)
		require.NoError(t, err)
		require.GreaterOrEqual(t, report.Seed, int64(0))
		require.Len(t, runRepo.runs, 1)
		require.Equal(t, report.Seed, runRepo.runs[0].Seed)
	})

	t.Run("input validation", func(t *testing.T) {
		handler, _, _ := newTestHandler(t)

		input := baseInput
		input.Years = 0
		_, err := handler.Run(context.Background(), input)
		require.ErrorContains(t, err, "years")

		input = baseInput
		input.Tickers = nil
		_, err = handler.Run(context.Background(), input)
		require.ErrorContains(t, err, "tickers")
	})

	t.Run("progress callback fires per ticker", func(t *testing.T) {
		handler, _, _ := newTestHandler(t)

		done := []string{}
		input := baseInput
		input.Progress = func(ticker string) {
			done = append(done, ticker)
		}

		_, err := handler.Run(context.Background(), input)
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL", "MSFT"}, done)
	})
}
