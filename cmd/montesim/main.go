package main

import (
	"context"
	"log"
	"strings"

	"montesim/cmd"
	"montesim/internal"
	"montesim/internal/app"
	"montesim/internal/util"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "montesim",
	Short: "Monte Carlo equity outcome simulator",
}

var (
	ingestTickers string
	ingestStart   string
	ingestEnd     string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch and store daily price history for a set of tickers",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		start, err := util.ParseDate(ingestStart)
		if err != nil {
			return err
		}
		end, err := util.ParseDate(ingestEnd)
		if err != nil {
			return err
		}

		return internal.UpdateAllPrices(
			handler.MarketDataClient,
			handler.StockDataRepository,
			splitTickers(ingestTickers),
			start,
			end,
		)
	},
}

var (
	simTickers       string
	simYears         int
	simPaths         int
	simDaysPerYear   int
	simSeed          int64
	simTargetValue   float64
	simLookbackStart string
	simLookbackEnd   string
	simWorkers       int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a Monte Carlo simulation and persist yearly outcome records",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		start, err := util.ParseDate(simLookbackStart)
		if err != nil {
			return err
		}
		end, err := util.ParseDate(simLookbackEnd)
		if err != nil {
			return err
		}

		tickers := splitTickers(simTickers)
		bar := progressbar.Default(int64(len(tickers)), "simulating")

		var seed *int64
		if c.Flags().Changed("seed") {
			seed = &simSeed
		}

		report, err := handler.SimulationHandler.Run(context.Background(), app.SimulationInput{
			Tickers:       tickers,
			Years:         simYears,
			NumPaths:      simPaths,
			DaysPerYear:   simDaysPerYear,
			Seed:          seed,
			TargetValue:   simTargetValue,
			LookbackStart: start,
			LookbackEnd:   end,
			Workers:       simWorkers,
			Progress: func(string) {
				bar.Add(1)
			},
		})
		if err != nil {
			return err
		}

		internal.Pprint(report)
		return nil
	},
}

var apiPort int

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the ingestion and simulation HTTP API",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		return handler.StartApi(apiPort)
	},
}

func splitTickers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, strings.ToUpper(t))
		}
	}
	return out
}

func main() {
	ingestCmd.Flags().StringVar(&ingestTickers, "tickers", "", "comma-separated ticker symbols")
	ingestCmd.Flags().StringVar(&ingestStart, "start", "2014-01-01", "history start date (YYYY-MM-DD)")
	ingestCmd.Flags().StringVar(&ingestEnd, "end", "2024-12-31", "history end date (YYYY-MM-DD)")
	ingestCmd.MarkFlagRequired("tickers")

	simulateCmd.Flags().StringVar(&simTickers, "tickers", "", "comma-separated ticker symbols")
	simulateCmd.Flags().IntVar(&simYears, "years", 10, "number of years to simulate")
	simulateCmd.Flags().IntVar(&simPaths, "paths", 1000, "ensemble size per ticker")
	simulateCmd.Flags().IntVar(&simDaysPerYear, "days-per-year", 252, "trading days per simulated year")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "random seed (omit for a recorded random seed)")
	simulateCmd.Flags().Float64Var(&simTargetValue, "target", 0, "success threshold for the probability estimate")
	simulateCmd.Flags().StringVar(&simLookbackStart, "lookback-start", "2014-01-01", "history window start (YYYY-MM-DD)")
	simulateCmd.Flags().StringVar(&simLookbackEnd, "lookback-end", "2024-12-31", "history window end (YYYY-MM-DD)")
	simulateCmd.Flags().IntVar(&simWorkers, "workers", 0, "simulation worker goroutines (0 = default)")
	simulateCmd.MarkFlagRequired("tickers")

	apiCmd.Flags().IntVar(&apiPort, "port", 8080, "listen port")

	rootCmd.AddCommand(ingestCmd, simulateCmd, apiCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
