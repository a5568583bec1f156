package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jenozu/fittrack-plus/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &user, nil
}

type ProfileUpdate struct {
	FullName *string `json:"full_name"`
	Timezone *string `json:"timezone"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*models.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Timezone != nil {
		user.Timezone = *in.Timezone
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}
