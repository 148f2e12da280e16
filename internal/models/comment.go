package models

import (
	"time"
)

type Comment struct {
	CommentID uint      `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	ArticleID uint      `gorm:"column:article_id;not null;index" json:"article_id"`
	Article   Article   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Author    string    `gorm:"not null;index;size:100" json:"author"`
	Votes     int       `gorm:"default:0" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
