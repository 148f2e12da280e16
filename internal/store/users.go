package store

import (
	"errors"

	"newsdesk/internal/apperr"
	"newsdesk/internal/models"

	"gorm.io/gorm"
)

func (s *Store) ListUsers() ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Username not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
