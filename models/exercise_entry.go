package models

import (
	"time"

	"gorm.io/gorm"
)

type ExerciseEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index:idx_exercise_user_date;not null" json:"user_id"`
	EntryDate time.Time `gorm:"index:idx_exercise_user_date;not null" json:"entry_date"`

	ExerciseName    string  `gorm:"not null" json:"exercise_name"`
	DurationMinutes float64 `json:"duration_minutes"`
	CaloriesBurned  float64 `json:"calories_burned"`
	Notes           string  `json:"notes,omitempty"`
}
