// Package store defines the read contract the dashboard engine consumes and
// its gorm-backed implementation. The engine never queries the database
// directly; everything it needs is scoped to one user and a day or day range.
package store

import (
	"context"
	"time"

	"github.com/jenozu/fittrack-plus/models"
)

// EntryStore is the read-only view over logged entries and targets.
type EntryStore interface {
	// FoodEntriesByDate returns all food entries for the user on the given day.
	FoodEntriesByDate(ctx context.Context, userID uint, day time.Time) ([]models.FoodEntry, error)
	// ExerciseEntriesByDate returns all exercise entries for the user on the given day.
	ExerciseEntriesByDate(ctx context.Context, userID uint, day time.Time) ([]models.ExerciseEntry, error)

	// FoodEntriesInRange returns food entries for the user with entry_date in
	// [start, end] inclusive.
	FoodEntriesInRange(ctx context.Context, userID uint, start, end time.Time) ([]models.FoodEntry, error)
	// ExerciseEntriesInRange returns exercise entries for the user with
	// entry_date in [start, end] inclusive.
	ExerciseEntriesInRange(ctx context.Context, userID uint, start, end time.Time) ([]models.ExerciseEntry, error)

	// ActiveDates returns the distinct calendar days on which the user logged
	// at least one food or exercise entry, ascending. Weight logs do not count.
	ActiveDates(ctx context.Context, userID uint) ([]time.Time, error)

	// WeightLogsInRange returns weight logs with log_date in [start, end],
	// ascending by date. Days without a log are absent.
	WeightLogsInRange(ctx context.Context, userID uint, start, end time.Time) ([]models.WeightLog, error)

	// TargetsForUser returns the user's current targets, or (nil, nil) when the
	// user has not configured any.
	TargetsForUser(ctx context.Context, userID uint) (*models.UserTargets, error)
}
