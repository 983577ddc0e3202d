package repository

import (
	"database/sql"
	"fmt"
	"montesim/internal/db/models/postgres/public/model"
	"montesim/internal/db/models/postgres/public/table"
	"montesim/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type SimulationRepository interface {
	AddMany([]*model.Simulation) error
	List(runID uuid.UUID, ticker string) ([]model.Simulation, error)
}

type simulationRepositoryHandler struct {
	Db *sql.DB
}

func NewSimulationRepository(db *sql.DB) SimulationRepository {
	return simulationRepositoryHandler{db}
}

func (h simulationRepositoryHandler) AddMany(in []*model.Simulation) error {
	if len(in) == 0 {
		return nil
	}

	query := table.Simulation.
		INSERT(table.Simulation.MutableColumns).
		MODELS(in)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to create simulation rows in db: %w", err)
	}

	return nil
}

func (h simulationRepositoryHandler) List(runID uuid.UUID, ticker string) ([]model.Simulation, error) {
	query := table.Simulation.
		SELECT(table.Simulation.AllColumns).
		WHERE(
			postgres.AND(
				table.Simulation.RunID.EQ(postgres.String(runID.String())),
				table.Simulation.Ticker.EQ(postgres.String(ticker)),
			),
		).
		ORDER_BY(
			table.Simulation.SimulationID.ASC(),
			table.Simulation.Year.ASC(),
		)

	out := []model.Simulation{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation rows for %s: %w", ticker, err)
	}

	return out, nil
}

// SimulationModelsFromRecords shapes aggregated year records into
// simulation table rows. Load owns id assignment; everything else is
// persisted unchanged.
func SimulationModelsFromRecords(records []domain.SimulationYearRecord) []*model.Simulation {
	out := make([]*model.Simulation, 0, len(records))
	for _, r := range records {
		out = append(out, &model.Simulation{
			Ticker:           r.Ticker,
			RunID:            r.RunID,
			SimulationID:     int32(r.PathIndex),
			Year:             int32(r.Year),
			Days:             int32(r.Days),
			StartingValue:    r.StartingValue,
			EndingValue:      r.EndingValue,
			AnnualReturn:     r.AnnualReturn,
			CumulativeReturn: r.CumulativeReturn,
			Volatility:       r.Volatility,
			Probability:      r.Probability,
		})
	}
	return out
}
