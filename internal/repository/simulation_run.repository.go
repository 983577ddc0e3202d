package repository

import (
	"database/sql"
	"fmt"
	"montesim/internal/db/models/postgres/public/model"
	"montesim/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type SimulationRunRepository interface {
	Add(model.SimulationRun) error
	Get(runID uuid.UUID) (*model.SimulationRun, error)
}

type simulationRunRepositoryHandler struct {
	Db *sql.DB
}

func NewSimulationRunRepository(db *sql.DB) SimulationRunRepository {
	return simulationRunRepositoryHandler{db}
}

func (h simulationRunRepositoryHandler) Add(run model.SimulationRun) error {
	run.CreatedAt = time.Now().UTC()

	query := table.SimulationRun.
		INSERT(table.SimulationRun.AllColumns).
		MODEL(run)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to create simulation run %s in db: %w", run.RunID, err)
	}

	return nil
}

func (h simulationRunRepositoryHandler) Get(runID uuid.UUID) (*model.SimulationRun, error) {
	query := table.SimulationRun.
		SELECT(table.SimulationRun.AllColumns).
		WHERE(table.SimulationRun.RunID.EQ(postgres.String(runID.String())))

	out := model.SimulationRun{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get simulation run %s: %w", runID, err)
	}

	return &out, nil
}
