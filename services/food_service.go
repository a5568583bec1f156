package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jenozu/fittrack-plus/models"
)

type FoodEntryService struct {
	db    *gorm.DB
	cache SummaryCache
	log   zerolog.Logger
}

func NewFoodEntryService(db *gorm.DB, cache SummaryCache, log zerolog.Logger) *FoodEntryService {
	if cache == nil {
		cache = NoopSummaryCache{}
	}
	return &FoodEntryService{db: db, cache: cache, log: log}
}

type FoodEntryInput struct {
	FoodName  string  `json:"food_name" binding:"required"`
	BrandName string  `json:"brand_name"`
	MealType  string  `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack other"`
	Calories  float64 `json:"calories" binding:"min=0"`
	ProteinG  float64 `json:"protein_g" binding:"min=0"`
	CarbsG    float64 `json:"carbs_g" binding:"min=0"`
	FatG      float64 `json:"fat_g" binding:"min=0"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	Unit      string  `json:"unit"`
	EntryDate string  `json:"entry_date" binding:"required"`
}

type FoodEntryUpdate struct {
	FoodName  *string  `json:"food_name"`
	BrandName *string  `json:"brand_name"`
	MealType  *string  `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack other"`
	Calories  *float64 `json:"calories" binding:"omitempty,min=0"`
	ProteinG  *float64 `json:"protein_g" binding:"omitempty,min=0"`
	CarbsG    *float64 `json:"carbs_g" binding:"omitempty,min=0"`
	FatG      *float64 `json:"fat_g" binding:"omitempty,min=0"`
	Quantity  *float64 `json:"quantity" binding:"omitempty,gt=0"`
	Unit      *string  `json:"unit"`
	EntryDate *string  `json:"entry_date"`
}

func (s *FoodEntryService) Create(ctx context.Context, userID uint, in FoodEntryInput) (*models.FoodEntry, error) {
	day, err := parseDay(in.EntryDate)
	if err != nil {
		return nil, err
	}
	unit := in.Unit
	if unit == "" {
		unit = "serving"
	}
	entry := models.FoodEntry{
		UserID:    userID,
		EntryDate: dayStart(day),
		FoodName:  in.FoodName,
		BrandName: in.BrandName,
		MealType:  in.MealType,
		Calories:  in.Calories,
		Protein:   in.ProteinG,
		Carbs:     in.CarbsG,
		Fat:       in.FatG,
		Quantity:  in.Quantity,
		Unit:      unit,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, storeErr(err)
	}

	s.cache.Invalidate(userID, entry.EntryDate)
	return &entry, nil
}

func (s *FoodEntryService) List(ctx context.Context, userID uint, date *time.Time) ([]models.FoodEntry, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != nil {
		q = q.Where("entry_date = ?", dayStart(*date))
	}

	var entries []models.FoodEntry
	if err := q.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

func (s *FoodEntryService) Get(ctx context.Context, userID, entryID uint) (*models.FoodEntry, error) {
	var entry models.FoodEntry
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

func (s *FoodEntryService) Update(ctx context.Context, userID, entryID uint, in FoodEntryUpdate) (*models.FoodEntry, error) {
	entry, err := s.Get(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	oldDate := entry.EntryDate

	if in.FoodName != nil {
		entry.FoodName = *in.FoodName
	}
	if in.BrandName != nil {
		entry.BrandName = *in.BrandName
	}
	if in.MealType != nil {
		entry.MealType = *in.MealType
	}
	if in.Calories != nil {
		entry.Calories = *in.Calories
	}
	if in.ProteinG != nil {
		entry.Protein = *in.ProteinG
	}
	if in.CarbsG != nil {
		entry.Carbs = *in.CarbsG
	}
	if in.FatG != nil {
		entry.Fat = *in.FatG
	}
	if in.Quantity != nil {
		entry.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		entry.Unit = *in.Unit
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

	// an entry moved to another day stales both days' summaries
	s.cache.Invalidate(userID, oldDate)
	if dayKey(entry.EntryDate) != dayKey(oldDate) {
		s.cache.Invalidate(userID, entry.EntryDate)
	}
	return entry, nil
}

func (s *FoodEntryService) Delete(ctx context.Context, userID, entryID uint) error {
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
