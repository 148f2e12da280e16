package store

import (
	"newsdesk/internal/models"
)

func (s *Store) ListTopics() ([]models.Topic, error) {
	topics := []models.Topic{}
	if err := s.db.Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// CreateTopic inserts one topic. Duplicate slugs surface as a store
// unique-key violation and are mapped by the error middleware.
func (s *Store) CreateTopic(slug, description string) (*models.Topic, error) {
	topic := models.Topic{Slug: slug, Description: description}
	if err := s.db.Create(&topic).Error; err != nil {
		return nil, err
	}
	s.refs.InvalidateTopics()
	return &topic, nil
}
