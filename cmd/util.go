package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"montesim/api"
	"montesim/internal"
	"montesim/internal/app"
	"montesim/internal/repository"
	"montesim/pkg/yahoofinance"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	stockDataRepository := repository.NewStockDataRepository(dbConn)
	simulationRepository := repository.NewSimulationRepository(dbConn)
	simulationRunRepository := repository.NewSimulationRunRepository(dbConn)

	simulationHandler := app.SimulationHandler{
		StockDataRepository:     stockDataRepository,
		SimulationRepository:    simulationRepository,
		SimulationRunRepository: simulationRunRepository,
	}

	return &api.ApiHandler{
		Db:                  dbConn,
		SimulationHandler:   simulationHandler,
		StockDataRepository: stockDataRepository,
		MarketDataClient:    yahoofinance.Client{},
	}, nil
}
