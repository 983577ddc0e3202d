package api

import (
	"fmt"
	"montesim/internal"
	"montesim/internal/util"

	"github.com/gin-gonic/gin"
)

type updatePricesRequest struct {
	Tickers   []string `json:"tickers" binding:"required"`
	StartDate string   `json:"startDate" binding:"required"`
	EndDate   string   `json:"endDate" binding:"required"`
}

func (m ApiHandler) updatePrices(c *gin.Context) {
	var req updatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, 400)
		return
	}

	start, err := util.ParseDate(req.StartDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	end, err := util.ParseDate(req.EndDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	err = internal.UpdateAllPrices(m.MarketDataClient, m.StockDataRepository, req.Tickers, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{
		"message": "ok",
	})
}
