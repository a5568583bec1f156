package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jenozu/fittrack-plus/models"
	"github.com/jenozu/fittrack-plus/store"
)

// CaloriePoint is one day of the calorie progress series.
type CaloriePoint struct {
	Date             string  `json:"date"`
	CaloriesConsumed float64 `json:"calories_consumed"`
	CaloriesBurned   float64 `json:"calories_burned"`
	NetCalories      float64 `json:"net_calories"`
	TargetCalories   float64 `json:"target_calories"`
}

// MacroPoint is one day of the macro progress series.
type MacroPoint struct {
	Date           string  `json:"date"`
	ProteinG       float64 `json:"protein_g"`
	CarbsG         float64 `json:"carbs_g"`
	FatG           float64 `json:"fat_g"`
	TargetProteinG float64 `json:"target_protein_g"`
	TargetCarbsG   float64 `json:"target_carbs_g"`
	TargetFatG     float64 `json:"target_fat_g"`
}

type RangeService struct {
	store store.EntryStore
	log   zerolog.Logger
}

func NewRangeService(st store.EntryStore, log zerolog.Logger) *RangeService {
	return &RangeService{store: st, log: log}
}

// Summaries returns one DailySummary per calendar day in [start, end]
// inclusive, ascending, with days of zero activity zero-filled rather than
// omitted; charts depend on a dense series. The entries are fetched with one
// range query per entity and bucketed per day, but each day's row comes from
// the same summarize the daily path uses.
func (s *RangeService) Summaries(ctx context.Context, userID uint, start, end time.Time) ([]DailySummary, error) {
	from, to := dayStart(start), dayStart(end)
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	foods, err := s.store.FoodEntriesInRange(ctx, userID, from, to)
	if err != nil {
		return nil, storeErr(err)
	}
	exercises, err := s.store.ExerciseEntriesInRange(ctx, userID, from, to)
	if err != nil {
		return nil, storeErr(err)
	}

	targets, err := s.store.TargetsForUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	var goal models.UserTargets
	if targets != nil {
		goal = *targets
	}

	foodsByDay := map[string][]models.FoodEntry{}
	for _, f := range foods {
		foodsByDay[dayKey(f.EntryDate)] = append(foodsByDay[dayKey(f.EntryDate)], f)
	}
	exercisesByDay := map[string][]models.ExerciseEntry{}
	for _, e := range exercises {
		exercisesByDay[dayKey(e.EntryDate)] = append(exercisesByDay[dayKey(e.EntryDate)], e)
	}

	var out []DailySummary
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := dayKey(d)
		out = append(out, summarize(d, foodsByDay[key], exercisesByDay[key], goal))
	}
	return out, nil
}

// CalorieSeries projects the dense summary series into chart rows for calorie
// intake vs. burn.
func (s *RangeService) CalorieSeries(ctx context.Context, userID uint, start, end time.Time) ([]CaloriePoint, error) {
	summaries, err := s.Summaries(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	points := make([]CaloriePoint, 0, len(summaries))
	for _, d := range summaries {
		points = append(points, CaloriePoint{
			Date:             d.Date,
			CaloriesConsumed: d.TotalCalories,
			CaloriesBurned:   d.CaloriesBurned,
			NetCalories:      d.TotalCalories - d.CaloriesBurned,
			TargetCalories:   d.TargetCalories,
		})
	}
	return points, nil
}

// MacroSeries projects the dense summary series into chart rows for
// macronutrients.
func (s *RangeService) MacroSeries(ctx context.Context, userID uint, start, end time.Time) ([]MacroPoint, error) {
	summaries, err := s.Summaries(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	points := make([]MacroPoint, 0, len(summaries))
	for _, d := range summaries {
		points = append(points, MacroPoint{
			Date:           d.Date,
			ProteinG:       d.TotalProteinG,
			CarbsG:         d.TotalCarbsG,
			FatG:           d.TotalFatG,
			TargetProteinG: d.TargetProteinG,
			TargetCarbsG:   d.TargetCarbsG,
			TargetFatG:     d.TargetFatG,
		})
	}
	return points, nil
}

// WeightSeries returns the user's weight logs in [start, end], ascending.
// Unlike the summary series it is sparse: weight is not summed, a day either
// has its single log or no row at all.
func (s *RangeService) WeightSeries(ctx context.Context, userID uint, start, end time.Time) ([]models.WeightLog, error) {
	from, to := dayStart(start), dayStart(end)
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	logs, err := s.store.WeightLogsInRange(ctx, userID, from, to)
	if err != nil {
		return nil, storeErr(err)
	}
	return logs, nil
}
