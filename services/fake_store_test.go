package services_test

import (
	"context"
	"sort"
	"time"

	"github.com/jenozu/fittrack-plus/models"
)

// fakeStore is an in-memory EntryStore for engine tests. Day matching uses
// the same local-midnight normalization the real store applies on write.
type fakeStore struct {
	foods     []models.FoodEntry
	exercises []models.ExerciseEntry
	weights   []models.WeightLog
	targets   *models.UserTargets

	err error // returned from every method when set

	foodFetches  int
	rangeFetches int
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func sameDay(a, b time.Time) bool {
	return a.In(time.Local).Format("2006-01-02") == b.In(time.Local).Format("2006-01-02")
}

func inRange(d, start, end time.Time) bool {
	key := d.In(time.Local).Format("2006-01-02")
	return key >= start.In(time.Local).Format("2006-01-02") &&
		key <= end.In(time.Local).Format("2006-01-02")
}

func (f *fakeStore) FoodEntriesByDate(_ context.Context, userID uint, d time.Time) ([]models.FoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.foodFetches++
	var out []models.FoodEntry
	for _, e := range f.foods {
		if e.UserID == userID && sameDay(e.EntryDate, d) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) ExerciseEntriesByDate(_ context.Context, userID uint, d time.Time) ([]models.ExerciseEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ExerciseEntry
	for _, e := range f.exercises {
		if e.UserID == userID && sameDay(e.EntryDate, d) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) FoodEntriesInRange(_ context.Context, userID uint, start, end time.Time) ([]models.FoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.rangeFetches++
	var out []models.FoodEntry
	for _, e := range f.foods {
		if e.UserID == userID && inRange(e.EntryDate, start, end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) ExerciseEntriesInRange(_ context.Context, userID uint, start, end time.Time) ([]models.ExerciseEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ExerciseEntry
	for _, e := range f.exercises {
		if e.UserID == userID && inRange(e.EntryDate, start, end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) ActiveDates(_ context.Context, userID uint) ([]time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[string]time.Time{}
	for _, e := range f.foods {
		if e.UserID == userID {
			d := e.EntryDate.In(time.Local)
			seen[d.Format("2006-01-02")] = day(d.Format("2006-01-02"))
		}
	}
	for _, e := range f.exercises {
		if e.UserID == userID {
			d := e.EntryDate.In(time.Local)
			seen[d.Format("2006-01-02")] = day(d.Format("2006-01-02"))
		}
	}
	var out []time.Time
	for _, d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

func (f *fakeStore) WeightLogsInRange(_ context.Context, userID uint, start, end time.Time) ([]models.WeightLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.WeightLog
	for _, w := range f.weights {
		if w.UserID == userID && inRange(w.LogDate, start, end) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogDate.Before(out[j].LogDate) })
	return out, nil
}

func (f *fakeStore) TargetsForUser(_ context.Context, userID uint) (*models.UserTargets, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.targets == nil || f.targets.UserID != userID {
		return nil, nil
	}
	return f.targets, nil
}

func food(userID uint, date string, calories, protein, carbs, fat float64) models.FoodEntry {
	return models.FoodEntry{
		UserID:    userID,
		EntryDate: day(date),
		FoodName:  "test food",
		Calories:  calories,
		Protein:   protein,
		Carbs:     carbs,
		Fat:       fat,
		Quantity:  1,
		Unit:      "serving",
	}
}

func exercise(userID uint, date string, burned float64) models.ExerciseEntry {
	return models.ExerciseEntry{
		UserID:         userID,
		EntryDate:      day(date),
		ExerciseName:   "test exercise",
		CaloriesBurned: burned,
	}
}

func targetsFor(userID uint, calories, protein, carbs, fat float64) *models.UserTargets {
	return &models.UserTargets{
		UserID:   userID,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}
