package store

import (
	"newsdesk/internal/apperr"
	"newsdesk/internal/models"

	"gorm.io/gorm"
)

// ListComments returns an article's comments newest first. Pagination
// follows the article listing: 1-indexed pages of limit rows, applied
// only when a page is requested.
func (s *Store) ListComments(articleID, limit, page int) ([]models.Comment, error) {
	if err := s.ArticleExists(articleID); err != nil {
		return nil, err
	}

	query := s.db.
		Where("article_id = ?", articleID).
		Order("created_at DESC")

	if page > 0 {
		if limit <= 0 {
			limit = 10
		}
		query = query.Limit(limit).Offset((page - 1) * limit)
	}

	comments := []models.Comment{}
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Store) CreateComment(articleID int, username, body string) (*models.Comment, error) {
	if err := s.ArticleExists(articleID); err != nil {
		return nil, err
	}

	known, err := s.refs.UserExists(username)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperr.NotFound("Username not found")
	}

	comment := models.Comment{
		ArticleID: uint(articleID),
		Author:    username,
		Body:      body,
		Votes:     0,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *Store) UpdateCommentVotes(id, delta int) (*models.Comment, error) {
	res := s.db.Model(&models.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Not found, comment_id does not exist")
	}

	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *Store) DeleteComment(id int) error {
	res := s.db.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Not found, comment_id does not exist")
	}
	return nil
}
