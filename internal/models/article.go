package models

import (
	"time"
)

type Article struct {
	ArticleID     uint      `gorm:"primaryKey;column:article_id" json:"article_id"`
	Title         string    `gorm:"not null" json:"title"`
	Topic         string    `gorm:"not null;index;size:100" json:"topic"`
	Author        string    `gorm:"not null;index;size:100" json:"author"`
	Body          string    `gorm:"type:text" json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `gorm:"default:0" json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url" json:"article_img_url"`

	// Computed from the comments table on every read, never stored.
	CommentCount int `gorm:"->;-:migration" json:"comment_count"`
}
