package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenozu/fittrack-plus/models"
	"github.com/jenozu/fittrack-plus/services"
)

func newRangeService(st *fakeStore) *services.RangeService {
	return services.NewRangeService(st, zerolog.Nop())
}

func TestSummaries_SingleDayRangeEqualsDailySummary(t *testing.T) {
	st := &fakeStore{
		targets:   targetsFor(1, 2000, 150, 200, 65),
		foods:     []models.FoodEntry{food(1, "2024-03-10", 640, 38, 55, 21)},
		exercises: []models.ExerciseEntry{exercise(1, "2024-03-10", 120)},
	}

	series, err := newRangeService(st).Summaries(context.Background(), 1, day("2024-03-10"), day("2024-03-10"))
	require.NoError(t, err)
	require.Len(t, series, 1)

	daily, err := newSummaryService(st, nil).DailySummary(context.Background(), 1, day("2024-03-10"))
	require.NoError(t, err)

	assert.Equal(t, daily, series[0])
}

func TestSummaries_DenseAndZeroFilled(t *testing.T) {
	st := &fakeStore{
		targets: targetsFor(1, 2000, 150, 200, 65),
		foods: []models.FoodEntry{
			food(1, "2024-03-10", 500, 30, 50, 20),
			food(1, "2024-03-13", 800, 45, 90, 30),
		},
	}

	series, err := newRangeService(st).Summaries(context.Background(), 1, day("2024-03-09"), day("2024-03-14"))
	require.NoError(t, err)
	require.Len(t, series, 6, "one row per calendar day, inclusive")

	for i, want := range []string{"2024-03-09", "2024-03-10", "2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14"} {
		assert.Equal(t, want, series[i].Date)
	}

	// empty days are zero-filled against current targets, never omitted
	assert.Zero(t, series[0].TotalCalories)
	assert.Equal(t, 2000.0, series[0].CaloriesRemaining)
	assert.Equal(t, 500.0, series[1].TotalCalories)
	assert.Zero(t, series[2].TotalCalories)
	assert.Equal(t, 800.0, series[4].TotalCalories)
}

func TestSummaries_InvalidRange(t *testing.T) {
	st := &fakeStore{}

	_, err := newRangeService(st).Summaries(context.Background(), 1, day("2024-03-14"), day("2024-03-09"))
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidRange)
}

func TestSummaries_OneRangeFetchPerEntity(t *testing.T) {
	st := &fakeStore{targets: targetsFor(1, 2000, 0, 0, 0)}

	_, err := newRangeService(st).Summaries(context.Background(), 1, day("2024-01-01"), day("2024-03-31"))
	require.NoError(t, err)

	assert.Equal(t, 1, st.rangeFetches, "range aggregation must batch the entry fetch")
	assert.Zero(t, st.foodFetches, "range aggregation must not issue per-day queries")
}

func TestCalorieSeries_Values(t *testing.T) {
	st := &fakeStore{
		targets:   targetsFor(1, 2000, 0, 0, 0),
		foods:     []models.FoodEntry{food(1, "2024-03-10", 1500, 0, 0, 0)},
		exercises: []models.ExerciseEntry{exercise(1, "2024-03-10", 400)},
	}

	series, err := newRangeService(st).CalorieSeries(context.Background(), 1, day("2024-03-09"), day("2024-03-10"))
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, services.CaloriePoint{
		Date:           "2024-03-09",
		TargetCalories: 2000,
	}, series[0])
	assert.Equal(t, services.CaloriePoint{
		Date:             "2024-03-10",
		CaloriesConsumed: 1500,
		CaloriesBurned:   400,
		NetCalories:      1100,
		TargetCalories:   2000,
	}, series[1])
}

func TestMacroSeries_Values(t *testing.T) {
	st := &fakeStore{
		targets: targetsFor(1, 2000, 150, 200, 65),
		foods: []models.FoodEntry{
			food(1, "2024-03-10", 500, 30, 50, 20),
			food(1, "2024-03-10", 300, 25, 10, 12),
		},
	}

	series, err := newRangeService(st).MacroSeries(context.Background(), 1, day("2024-03-10"), day("2024-03-11"))
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, services.MacroPoint{
		Date:           "2024-03-10",
		ProteinG:       55,
		CarbsG:         60,
		FatG:           32,
		TargetProteinG: 150,
		TargetCarbsG:   200,
		TargetFatG:     65,
	}, series[0])
	assert.Equal(t, services.MacroPoint{
		Date:           "2024-03-11",
		TargetProteinG: 150,
		TargetCarbsG:   200,
		TargetFatG:     65,
	}, series[1])
}

func TestWeightSeries_SparseAndOrdered(t *testing.T) {
	st := &fakeStore{
		weights: []models.WeightLog{
			{UserID: 1, LogDate: day("2024-03-12"), WeightKg: 81.2},
			{UserID: 1, LogDate: day("2024-03-09"), WeightKg: 82.0},
			{UserID: 1, LogDate: day("2024-04-01"), WeightKg: 80.0}, // outside range
			{UserID: 2, LogDate: day("2024-03-10"), WeightKg: 70.0}, // other user
		},
	}

	series, err := newRangeService(st).WeightSeries(context.Background(), 1, day("2024-03-09"), day("2024-03-15"))
	require.NoError(t, err)
	require.Len(t, series, 2, "weight series is sparse, not zero-filled")

	assert.Equal(t, 82.0, series[0].WeightKg)
	assert.Equal(t, 81.2, series[1].WeightKg)
	assert.True(t, series[0].LogDate.Before(series[1].LogDate))
}

func TestWeightSeries_InvalidRange(t *testing.T) {
	st := &fakeStore{}

	_, err := newRangeService(st).WeightSeries(context.Background(), 1, day("2024-03-15"), day("2024-03-09"))
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidRange)
}
