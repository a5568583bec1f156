package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jenozu/fittrack-plus/models"
)

type ExerciseEntryService struct {
	db    *gorm.DB
	cache SummaryCache
	log   zerolog.Logger
}

func NewExerciseEntryService(db *gorm.DB, cache SummaryCache, log zerolog.Logger) *ExerciseEntryService {
	if cache == nil {
		cache = NoopSummaryCache{}
	}
	return &ExerciseEntryService{db: db, cache: cache, log: log}
}

type ExerciseEntryInput struct {
	ExerciseName    string  `json:"exercise_name" binding:"required"`
	DurationMinutes float64 `json:"duration_minutes" binding:"min=0"`
	CaloriesBurned  float64 `json:"calories_burned" binding:"min=0"`
	Notes           string  `json:"notes"`
	EntryDate       string  `json:"entry_date" binding:"required"`
}

type ExerciseEntryUpdate struct {
	ExerciseName    *string  `json:"exercise_name"`
	DurationMinutes *float64 `json:"duration_minutes" binding:"omitempty,min=0"`
	CaloriesBurned  *float64 `json:"calories_burned" binding:"omitempty,min=0"`
	Notes           *string  `json:"notes"`
	EntryDate       *string  `json:"entry_date"`
}

func (s *ExerciseEntryService) Create(ctx context.Context, userID uint, in ExerciseEntryInput) (*models.ExerciseEntry, error) {
	day, err := parseDay(in.EntryDate)
	if err != nil {
		return nil, err
	}
	entry := models.ExerciseEntry{
		UserID:          userID,
		EntryDate:       dayStart(day),
		ExerciseName:    in.ExerciseName,
		DurationMinutes: in.DurationMinutes,
		CaloriesBurned:  in.CaloriesBurned,
		Notes:           in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, storeErr(err)
	}

	s.cache.Invalidate(userID, entry.EntryDate)
	return &entry, nil
}

func (s *ExerciseEntryService) List(ctx context.Context, userID uint, date *time.Time) ([]models.ExerciseEntry, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != nil {
		q = q.Where("entry_date = ?", dayStart(*date))
	}

	var entries []models.ExerciseEntry
	if err := q.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

func (s *ExerciseEntryService) Get(ctx context.Context, userID, entryID uint) (*models.ExerciseEntry, error) {
	var entry models.ExerciseEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &entry, nil
}

func (s *ExerciseEntryService) Update(ctx context.Context, userID, entryID uint, in ExerciseEntryUpdate) (*models.ExerciseEntry, error) {
	entry, err := s.Get(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	oldDate := entry.EntryDate

	if in.ExerciseName != nil {
		entry.ExerciseName = *in.ExerciseName
	}
	if in.DurationMinutes != nil {
		entry.DurationMinutes = *in.DurationMinutes
	}
	if in.CaloriesBurned != nil {
		entry.CaloriesBurned = *in.CaloriesBurned
	}
	if in.Notes != nil {
		entry.Notes = *in.Notes
	}
	if in.EntryDate != nil {
		day, err := parseDay(*in.EntryDate)
		if err != nil {
			return nil, err
		}
		entry.EntryDate = dayStart(day)
	}

	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, storeErr(err)
	}

	s.cache.Invalidate(userID, oldDate)
	if dayKey(entry.EntryDate) != dayKey(oldDate) {
		s.cache.Invalidate(userID, entry.EntryDate)
	}
	return entry, nil
}

func (s *ExerciseEntryService) Delete(ctx context.Context, userID, entryID uint) error {
	entry, err := s.Get(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(entry).Error; err != nil {
		return storeErr(err)
	}

	s.cache.Invalidate(userID, entry.EntryDate)
	return nil
}
