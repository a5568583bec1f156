package store

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/jenozu/fittrack-plus/models"
)

type GormStore struct{ db *gorm.DB }

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) FoodEntriesByDate(ctx context.Context, userID uint, day time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date BETWEEN ? AND ?", userID, dayStart(day), dayEnd(day)).
		Find(&entries).Error
	return entries, err
}

func (s *GormStore) ExerciseEntriesByDate(ctx context.Context, userID uint, day time.Time) ([]models.ExerciseEntry, error) {
	var entries []models.ExerciseEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date BETWEEN ? AND ?", userID, dayStart(day), dayEnd(day)).
		Find(&entries).Error
	return entries, err
}

func (s *GormStore) FoodEntriesInRange(ctx context.Context, userID uint, start, end time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date BETWEEN ? AND ?", userID, dayStart(start), dayEnd(end)).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}

func (s *GormStore) ExerciseEntriesInRange(ctx context.Context, userID uint, start, end time.Time) ([]models.ExerciseEntry, error) {
	var entries []models.ExerciseEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date BETWEEN ? AND ?", userID, dayStart(start), dayEnd(end)).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}

func (s *GormStore) ActiveDates(ctx context.Context, userID uint) ([]time.Time, error) {
	var foodDates, exerciseDates []time.Time

	if err := s.db.WithContext(ctx).
		Model(&models.FoodEntry{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("entry_date", &foodDates).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Model(&models.ExerciseEntry{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("entry_date", &exerciseDates).Error; err != nil {
		return nil, err
	}

	// union by calendar day
	byDay := map[string]time.Time{}
	for _, d := range append(foodDates, exerciseDates...) {
		day := dayStart(d)
		byDay[day.Format("2006-01-02")] = day
	}

	dates := make([]time.Time, 0, len(byDay))
	for _, d := range byDay {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func (s *GormStore) WeightLogsInRange(ctx context.Context, userID uint, start, end time.Time) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date BETWEEN ? AND ?", userID, dayStart(start), dayEnd(end)).
		Order("log_date ASC").
		Find(&logs).Error
	return logs, err
}

func (s *GormStore) TargetsForUser(ctx context.Context, userID uint) (*models.UserTargets, error) {
	var t models.UserTargets
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func dayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

func dayEnd(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.Local)
}
