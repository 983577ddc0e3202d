package api

import (
	"context"
	"fmt"
	"montesim/internal/app"
	"montesim/internal/domain"
	"montesim/internal/util"

	"github.com/gin-gonic/gin"
)

type runSimulationRequest struct {
	Tickers       []string `json:"tickers" binding:"required"`
	Years         int      `json:"years" binding:"required"`
	NumPaths      int      `json:"numPaths" binding:"required"`
	DaysPerYear   int      `json:"daysPerYear"`
	Seed          *int64   `json:"seed"`
	TargetValue   float64  `json:"targetValue"`
	LookbackStart string   `json:"lookbackStart" binding:"required"`
	LookbackEnd   string   `json:"lookbackEnd" binding:"required"`
}

type runSimulationResponse struct {
	*app.SimulationReport
	Profile *domain.RunProfile `json:"profile"`
}

func (m ApiHandler) runSimulation(c *gin.Context) {
	var req runSimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, 400)
		return
	}

	start, err := util.ParseDate(req.LookbackStart)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	end, err := util.ParseDate(req.LookbackEnd)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	profile := domain.NewRunProfile()
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile)

	report, err := m.SimulationHandler.Run(ctx, app.SimulationInput{
		Tickers:       req.Tickers,
		Years:         req.Years,
		NumPaths:      req.NumPaths,
		DaysPerYear:   req.DaysPerYear,
		Seed:          req.Seed,
		TargetValue:   req.TargetValue,
		LookbackStart: start,
		LookbackEnd:   end,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	profile.End()

	c.JSON(200, runSimulationResponse{
		SimulationReport: report,
		Profile:          profile,
	})
}
