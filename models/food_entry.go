package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodEntry is one logged food item for one user on one calendar day.
// EntryDate is truncated to local midnight on write.
type FoodEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index:idx_food_user_date;not null" json:"user_id"`
	EntryDate time.Time `gorm:"index:idx_food_user_date;not null" json:"entry_date"`

	FoodName  string `gorm:"not null" json:"food_name"`
	BrandName string `json:"brand_name,omitempty"`
	MealType  string `json:"meal_type"` // breakfast|lunch|dinner|snack|other

	Calories float64 `gorm:"not null" json:"calories"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`

	Quantity float64 `gorm:"default:1" json:"quantity"`
	Unit     string  `gorm:"default:serving" json:"unit"`
}
