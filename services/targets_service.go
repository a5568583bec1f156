package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jenozu/fittrack-plus/models"
)

type TargetsService struct {
	db *gorm.DB
}

func NewTargetsService(db *gorm.DB) *TargetsService {
	return &TargetsService{db: db}
}

// Get returns the user's targets, zero-valued when none were configured yet.
func (s *TargetsService) Get(ctx context.Context, userID uint) (*models.UserTargets, error) {
	var t models.UserTargets
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserTargets{UserID: userID}, nil
		}
		return nil, storeErr(err)
	}
	return &t, nil
}

func (s *TargetsService) Upsert(ctx context.Context, userID uint, calories, protein, carbs, fat float64) (*models.UserTargets, error) {
	var t models.UserTargets
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t = models.UserTargets{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		}
		if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
			return nil, storeErr(err)
		}
		return &t, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}

	t.Calories = calories
	t.Protein = protein
	t.Carbs = carbs
	t.Fat = fat

	if err := s.db.WithContext(ctx).Save(&t).Error; err != nil {
		return nil, storeErr(err)
	}
	return &t, nil
}
