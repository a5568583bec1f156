package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jenozu/fittrack-plus/models"
	"github.com/jenozu/fittrack-plus/store"
)

// DailySummary is the derived rollup of one user's day against their current
// targets. It is never persisted; the cache is an optimization, not a source
// of truth.
type DailySummary struct {
	Date string `json:"date"`

	TotalCalories float64 `json:"total_calories"`
	TotalProteinG float64 `json:"total_protein_g"`
	TotalCarbsG   float64 `json:"total_carbs_g"`
	TotalFatG     float64 `json:"total_fat_g"`

	CaloriesBurned    float64 `json:"calories_burned"`
	CaloriesRemaining float64 `json:"calories_remaining"`

	TargetCalories float64 `json:"target_calories"`
	TargetProteinG float64 `json:"target_protein_g"`
	TargetCarbsG   float64 `json:"target_carbs_g"`
	TargetFatG     float64 `json:"target_fat_g"`

	FoodEntriesCount     int `json:"food_entries_count"`
	ExerciseEntriesCount int `json:"exercise_entries_count"`
}

type SummaryService struct {
	store store.EntryStore
	cache SummaryCache
	log   zerolog.Logger
}

func NewSummaryService(st store.EntryStore, cache SummaryCache, log zerolog.Logger) *SummaryService {
	if cache == nil {
		cache = NoopSummaryCache{}
	}
	return &SummaryService{store: st, cache: cache, log: log}
}

// DailySummary computes the summary for one (user, day). Any calendar day is
// valid; a day with no entries yields zero totals and remaining = target.
func (s *SummaryService) DailySummary(ctx context.Context, userID uint, date time.Time) (DailySummary, error) {
	day := dayStart(date)

	cached, version, ok := s.cache.Get(userID, day)
	if ok {
		return cached, nil
	}

	foods, err := s.store.FoodEntriesByDate(ctx, userID, day)
	if err != nil {
		return DailySummary{}, storeErr(err)
	}
	exercises, err := s.store.ExerciseEntriesByDate(ctx, userID, day)
	if err != nil {
		return DailySummary{}, storeErr(err)
	}
	targets, err := s.targets(ctx, userID)
	if err != nil {
		return DailySummary{}, err
	}

	summary := summarize(day, foods, exercises, targets)
	if !s.cache.Put(userID, day, summary, version) {
		s.log.Debug().Uint("user_id", userID).Str("date", summary.Date).
			Msg("summary cache put superseded by invalidation")
	}
	return summary, nil
}

// targets returns the user's current targets, defaulting every field to zero
// when none are configured. The zero default is applied uniformly across the
// engine so a user without targets sees a degenerate but well-defined summary.
func (s *SummaryService) targets(ctx context.Context, userID uint) (models.UserTargets, error) {
	t, err := s.store.TargetsForUser(ctx, userID)
	if err != nil {
		return models.UserTargets{}, storeErr(err)
	}
	if t == nil {
		return models.UserTargets{}, nil
	}
	return *t, nil
}

// summarize is the single definition of what a day's summary means. Both the
// daily and the range paths go through it, so summing a day is identical no
// matter how its entries were fetched. Entry order is irrelevant.
func summarize(day time.Time, foods []models.FoodEntry, exercises []models.ExerciseEntry, targets models.UserTargets) DailySummary {
	out := DailySummary{
		Date:           day.Format(dayFormat),
		TargetCalories: targets.Calories,
		TargetProteinG: targets.Protein,
		TargetCarbsG:   targets.Carbs,
		TargetFatG:     targets.Fat,
	}

	for _, f := range foods {
		out.TotalCalories += f.Calories
		out.TotalProteinG += f.Protein
		out.TotalCarbsG += f.Carbs
		out.TotalFatG += f.Fat
	}
	out.FoodEntriesCount = len(foods)

	for _, e := range exercises {
		out.CaloriesBurned += e.CaloriesBurned
	}
	out.ExerciseEntriesCount = len(exercises)

	// may go negative when over target; clamping is a presentation concern
	out.CaloriesRemaining = out.TargetCalories - (out.TotalCalories - out.CaloriesBurned)
	return out
}
