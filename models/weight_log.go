package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightLog holds at most one weight per (user, day); logging again for the
// same day overwrites the earlier value.
type WeightLog struct {
	gorm.Model
	UserID   uint      `gorm:"index:idx_weight_user_date;not null" json:"user_id"`
	LogDate  time.Time `gorm:"index:idx_weight_user_date;not null" json:"log_date"`
	WeightKg float64   `gorm:"not null" json:"weight_kg"`
	Notes    string    `json:"notes,omitempty"`
}
