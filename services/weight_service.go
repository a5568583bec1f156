package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jenozu/fittrack-plus/models"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

// Log records the user's weight for a day. One log per (user, day): logging
// again for the same day overwrites the earlier value.
func (s *WeightService) Log(ctx context.Context, userID uint, weightKg float64, logDate time.Time, notes string) (*models.WeightLog, error) {
	day := dayStart(logDate)

	entry := models.WeightLog{
		UserID:   userID,
		LogDate:  day,
		WeightKg: weightKg,
		Notes:    notes,
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userID, day).
		Assign(models.WeightLog{WeightKg: weightKg, Notes: notes}).
		FirstOrCreate(&entry).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return &entry, nil
}
