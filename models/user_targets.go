package models

import (
	"gorm.io/gorm"
)

// UserTargets holds each user's daily nutrition targets. Targets are mutable
// and read at aggregation time: past days are always displayed against the
// current targets, not a historical snapshot.
type UserTargets struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Calories float64 `json:"target_calories"`  // e.g. 2000 kcal
	Protein  float64 `json:"target_protein_g"` // e.g. 150 g
	Carbs    float64 `json:"target_carbs_g"`   // e.g. 200 g
	Fat      float64 `json:"target_fat_g"`     // e.g. 65 g
}
