package api

import (
	"database/sql"
	"fmt"
	"montesim/internal"
	"montesim/internal/app"
	"montesim/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                  *sql.DB
	SimulationHandler   app.SimulationHandler
	StockDataRepository repository.StockDataRepository
	MarketDataClient    internal.MarketDataClient
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to montesim"})
	})
	router.POST("/updatePrices", m.updatePrices)
	router.POST("/runSimulation", m.runSimulation)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
