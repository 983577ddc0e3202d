package simulation

import (
	"context"
	"math"
	"montesim/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testParams(ticker string) domain.ReturnParameters {
	return domain.ReturnParameters{
		Ticker:              ticker,
		MeanDailyLogReturn:  0.0004,
		DailyVolatility:     0.012,
		AnnualizationFactor: 252,
	}
}

func TestSimulatePaths_validation(t *testing.T) {
	ctx := context.Background()
	params := testParams("AAPL")

	t.Run("zero horizon", func(t *testing.T) {
		_, err := SimulatePaths(ctx, params, 100, 0, Settings{HorizonDays: 0, NumPaths: 10, Seed: 1})

		var invalidErr *InvalidParameterError
		require.ErrorAs(t, err, &invalidErr)
		require.Equal(t, "horizonDays", invalidErr.Parameter)
		require.Equal(t, "AAPL", invalidErr.Ticker)
	})

	t.Run("zero paths", func(t *testing.T) {
		_, err := SimulatePaths(ctx, params, 100, 0, Settings{HorizonDays: 252, NumPaths: 0, Seed: 1})

		var invalidErr *InvalidParameterError
		require.ErrorAs(t, err, &invalidErr)
		require.Equal(t, "numPaths", invalidErr.Parameter)
	})

	t.Run("non-positive starting value", func(t *testing.T) {
		_, err := SimulatePaths(ctx, params, -5, 0, Settings{HorizonDays: 252, NumPaths: 10, Seed: 1})

		var invalidErr *InvalidParameterError
		require.ErrorAs(t, err, &invalidErr)
		require.Equal(t, "startingValue", invalidErr.Parameter)
		require.Equal(t, -5.0, invalidErr.Value)
	})
}

func TestSimulatePaths_allValuesPositive(t *testing.T) {
	paths, err := SimulatePaths(context.Background(), testParams("SPY"), 432.50, 0, Settings{
		HorizonDays: 300,
		NumPaths:    50,
		Seed:        7,
	})
	require.NoError(t, err)
	require.Len(t, paths, 50)

	for _, path := range paths {
		require.Len(t, path.Values, 301)
		require.Equal(t, 432.50, path.Values[0])
		for _, v := range path.Values {
			require.Greater(t, v, 0.0)
		}
	}
}

func TestSimulatePaths_reproducible(t *testing.T) {
	params := testParams("QQQ")
	settings := Settings{HorizonDays: 252, NumPaths: 40, Seed: 42}

	first, err := SimulatePaths(context.Background(), params, 100, 1, settings)
	require.NoError(t, err)

	second, err := SimulatePaths(context.Background(), params, 100, 1, settings)
	require.NoError(t, err)

	require.Equal(t, "", cmp.Diff(first, second))
}

func TestSimulatePaths_workerCountDoesNotChangeOutput(t *testing.T) {
	params := testParams("QQQ")

	sequential, err := SimulatePaths(context.Background(), params, 100, 0, Settings{
		HorizonDays: 100, NumPaths: 1200, Seed: 9, Workers: 1,
	})
	require.NoError(t, err)

	parallel, err := SimulatePaths(context.Background(), params, 100, 0, Settings{
		HorizonDays: 100, NumPaths: 1200, Seed: 9, Workers: 8,
	})
	require.NoError(t, err)

	require.Equal(t, "", cmp.Diff(sequential, parallel))
}

func TestSimulatePaths_tickersGetDistinctStreams(t *testing.T) {
	params := testParams("AAPL")
	settings := Settings{HorizonDays: 50, NumPaths: 5, Seed: 11}

	a, err := SimulatePaths(context.Background(), params, 100, 0, settings)
	require.NoError(t, err)

	b, err := SimulatePaths(context.Background(), params, 100, 1, settings)
	require.NoError(t, err)

	require.NotEqual(t, a[0].Values, b[0].Values)
}

func TestSimulatePaths_zeroVolatilityIsDeterministicDrift(t *testing.T) {
	params := domain.ReturnParameters{
		Ticker:              "AGG",
		MeanDailyLogReturn:  0.001,
		DailyVolatility:     0,
		AnnualizationFactor: 252,
	}

	paths, err := SimulatePaths(context.Background(), params, 100, 0, Settings{
		HorizonDays: 10,
		NumPaths:    3,
		Seed:        1,
	})
	require.NoError(t, err)

	for _, path := range paths {
		for day := 1; day <= 10; day++ {
			expected := 100 * math.Exp(0.001*float64(day))
			require.InEpsilon(t, expected, path.Values[day], 1e-9)
		}
	}
}

func TestSimulatePaths_ensembleMeanMatchesTheory(t *testing.T) {
	params := domain.ReturnParameters{
		Ticker:              "SPY",
		MeanDailyLogReturn:  0,
		DailyVolatility:     0.01,
		AnnualizationFactor: 252,
	}

	paths, err := SimulatePaths(context.Background(), params, 100, 0, Settings{
		HorizonDays: 252,
		NumPaths:    10000,
		Seed:        42,
	})
	require.NoError(t, err)

	var sumEnding, sumLogEnding float64
	for _, path := range paths {
		ending := path.Values[len(path.Values)-1]
		sumEnding += ending
		sumLogEnding += math.Log(ending)
	}
	meanEnding := sumEnding / float64(len(paths))
	meanLogEnding := sumLogEnding / float64(len(paths))

	// mean ending value within monte carlo error bounds for 10k paths
	expected := 100 * math.Exp(-0.5*0.01*0.01*252)
	require.InDelta(t, expected, meanEnding, expected*0.02)

	// the ito correction shifts the expected log price by exactly
	// -0.5*vol^2 per day; the mean log ending value pins that down with
	// far less monte carlo noise than the price level does
	expectedLog := math.Log(100) - 0.5*0.01*0.01*252
	require.InDelta(t, expectedLog, meanLogEnding, 0.01)
}

func TestSimulatePaths_cancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SimulatePaths(ctx, testParams("AAPL"), 100, 0, Settings{
		HorizonDays: 252,
		NumPaths:    5000,
		Seed:        3,
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuildJobs(t *testing.T) {
	jobs := buildJobs(batchSize*2 + 5)
	require.Len(t, jobs, 3)
	require.Equal(t, job{start: 0, end: batchSize}, jobs[0])
	require.Equal(t, job{start: batchSize, end: 2 * batchSize}, jobs[1])
	require.Equal(t, job{start: 2 * batchSize, end: 2*batchSize + 5}, jobs[2])
}
