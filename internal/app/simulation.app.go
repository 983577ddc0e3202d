package app

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"montesim/internal/calculator"
	"montesim/internal/db/models/postgres/public/model"
	"montesim/internal/domain"
	"montesim/internal/logger"
	"montesim/internal/repository"
	"montesim/internal/simulation"

	"github.com/google/uuid"
)

// SimulationInput is the full configuration surface of one run. All
// parameters are explicit; nothing is read from env or globals.
type SimulationInput struct {
	Tickers       []string
	Years         int
	NumPaths      int
	DaysPerYear   int // 0 means calculator.TradingDaysPerYear
	Seed          *int64
	TargetValue   float64
	LookbackStart time.Time
	LookbackEnd   time.Time
	Workers       int

	// Progress, when set, is called after each ticker completes.
	Progress func(ticker string)
}

// SimulationReport summarizes one run. Failed tickers are listed in
// Errors; their siblings still complete and persist.
type SimulationReport struct {
	RunID         uuid.UUID      `json:"runId"`
	Seed          int64          `json:"seed"`
	RecordsByTick map[string]int `json:"recordsByTicker"`
	Errors        []string       `json:"errors,omitempty"`
}

type SimulationHandler struct {
	StockDataRepository     repository.StockDataRepository
	SimulationRepository    repository.SimulationRepository
	SimulationRunRepository repository.SimulationRunRepository
}

// Run executes the full pipeline for each ticker: estimate parameters
// from history, simulate the ensemble, aggregate year records, fill
// probabilities and persist. Failure isolation is per ticker.
func (h SimulationHandler) Run(ctx context.Context, in SimulationInput) (*SimulationReport, error) {
	log := logger.FromContext(ctx)

	if len(in.Tickers) == 0 {
		return nil, fmt.Errorf("no tickers supplied")
	}
	if in.Years <= 0 {
		return nil, fmt.Errorf("invalid years %d: must be positive", in.Years)
	}
	if in.DaysPerYear <= 0 {
		in.DaysPerYear = calculator.TradingDaysPerYear
	}

	seed, err := resolveSeed(in.Seed)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	err = h.SimulationRunRepository.Add(model.SimulationRun{
		RunID:       runID,
		Seed:        seed,
		NumPaths:    int32(in.NumPaths),
		HorizonDays: int32(in.Years * in.DaysPerYear),
		DaysPerYear: int32(in.DaysPerYear),
		TargetValue: in.TargetValue,
	})
	if err != nil {
		return nil, err
	}

	log.Infow("starting simulation run",
		"runId", runID,
		"seed", seed,
		"tickers", len(in.Tickers),
		"paths", in.NumPaths,
		"horizonDays", in.Years*in.DaysPerYear,
	)

	report := &SimulationReport{
		RunID:         runID,
		Seed:          seed,
		RecordsByTick: map[string]int{},
	}

	profile := domain.GetRunProfile(ctx)
	for tickerIndex, ticker := range in.Tickers {
		n, err := h.runTicker(ctx, runID, tickerIndex, ticker, uint64(seed), in)
		if err != nil {
			err = fmt.Errorf("simulation failed for %s: %w", ticker, err)
			log.Error(err)
			report.Errors = append(report.Errors, err.Error())
		} else {
			report.RecordsByTick[ticker] = n
		}
		profile.MarkStage(ticker, "done")

		if in.Progress != nil {
			in.Progress(ticker)
		}
	}

	if len(report.RecordsByTick) == 0 {
		return report, fmt.Errorf("all %d tickers failed. first err: %s", len(in.Tickers), report.Errors[0])
	}

	return report, nil
}

func (h SimulationHandler) runTicker(ctx context.Context, runID uuid.UUID, tickerIndex int, ticker string, seed uint64, in SimulationInput) (int, error) {
	series, err := h.StockDataRepository.List(ticker, in.LookbackStart, in.LookbackEnd)
	if err != nil {
		return 0, err
	}

	params, err := calculator.EstimateReturnParameters(*series, in.DaysPerYear)
	if err != nil {
		return 0, err
	}

	latest, ok := series.Latest()
	if !ok {
		return 0, fmt.Errorf("no historical prices for %s in lookback window", ticker)
	}

	paths, err := simulation.SimulatePaths(ctx, *params, latest.AdjClose, tickerIndex, simulation.Settings{
		HorizonDays: in.Years * in.DaysPerYear,
		NumPaths:    in.NumPaths,
		Seed:        seed,
		Workers:     in.Workers,
	})
	if err != nil {
		return 0, err
	}

	records := make([]domain.SimulationYearRecord, 0, len(paths)*in.Years)
	for _, path := range paths {
		yearRecords, err := simulation.AggregateYears(path, ticker, runID, in.DaysPerYear)
		if err != nil {
			return 0, err
		}
		records = append(records, yearRecords...)
	}

	if err := simulation.FillProbabilities(records, in.TargetValue); err != nil {
		return 0, err
	}

	if err := h.SimulationRepository.AddMany(repository.SimulationModelsFromRecords(records)); err != nil {
		return 0, err
	}

	return len(records), nil
}

// resolveSeed uses the caller's seed when given, otherwise draws one
// from the OS entropy pool. either way the seed lands on the run record
// so the ensemble can be reproduced.
func resolveSeed(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to draw run seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) &^ (1 << 63)), nil
}
