package simulation

import (
	"context"
	"math"
	"math/rand/v2"
	"montesim/internal/domain"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultWorkers = 8

	// paths per worker job. small enough to keep workers balanced,
	// large enough that channel traffic is negligible next to the
	// per-path draw loop.
	batchSize = 512
)

// Settings are the explicit knobs for one ticker's ensemble. Nothing is
// read from env or globals.
type Settings struct {
	HorizonDays int
	NumPaths    int
	Seed        uint64
	Workers     int // 0 means DefaultWorkers
}

type job struct {
	start int
	end   int
}

func buildJobs(numPaths int) []job {
	nJobs := (numPaths + batchSize - 1) / batchSize
	jobs := make([]job, nJobs)
	for i := range nJobs {
		end := (i + 1) * batchSize
		if end > numPaths {
			end = numPaths
		}
		jobs[i] = job{start: i * batchSize, end: end}
	}
	return jobs
}

// pathStream derives the PCG stream id for one (ticker, path) pair.
// Streams are disjoint across tickers and paths, so the ensemble is
// bit-identical however the jobs land on workers.
func pathStream(tickerIndex, pathIndex, numPaths int) uint64 {
	return uint64(tickerIndex)*uint64(numPaths) + uint64(pathIndex) + 1
}

// SimulatePaths generates an ensemble of GBM price paths for one
// ticker. Every path starts at startingValue; every simulated value is
// strictly positive. The same parameters and seed always produce the
// same ensemble.
func SimulatePaths(ctx context.Context, params domain.ReturnParameters, startingValue float64, tickerIndex int, settings Settings) ([]domain.SimulatedPath, error) {
	if settings.HorizonDays <= 0 {
		return nil, &InvalidParameterError{Ticker: params.Ticker, Parameter: "horizonDays", Value: float64(settings.HorizonDays)}
	}
	if settings.NumPaths <= 0 {
		return nil, &InvalidParameterError{Ticker: params.Ticker, Parameter: "numPaths", Value: float64(settings.NumPaths)}
	}
	if startingValue <= 0 {
		return nil, &InvalidParameterError{Ticker: params.Ticker, Parameter: "startingValue", Value: startingValue}
	}

	workers := settings.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	jobs := buildJobs(settings.NumPaths)
	if len(jobs) < workers {
		workers = len(jobs)
	}

	jobsCh := make(chan job, len(jobs))
	for _, j := range jobs {
		jobsCh <- j
	}
	close(jobsCh)

	// ito-corrected drift. using the raw mean would bias the ensemble's
	// expected value upward.
	drift := params.MeanDailyLogReturn - 0.5*params.DailyVolatility*params.DailyVolatility

	res := make([]domain.SimulatedPath, settings.NumPaths)

	g, ctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for j := range jobsCh {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				for p := j.start; p < j.end; p++ {
					normal := distuv.Normal{
						Mu:    0,
						Sigma: 1,
						Src:   rand.NewPCG(settings.Seed, pathStream(tickerIndex, p, settings.NumPaths)),
					}

					values := make([]float64, settings.HorizonDays+1)
					values[0] = startingValue
					for t := 1; t <= settings.HorizonDays; t++ {
						values[t] = values[t-1] * math.Exp(drift+params.DailyVolatility*normal.Rand())
					}

					res[p] = domain.SimulatedPath{
						TickerIndex: tickerIndex,
						PathIndex:   p,
						Values:      values,
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}
