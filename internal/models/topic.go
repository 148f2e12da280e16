package models

type Topic struct {
	Slug        string `gorm:"primaryKey;size:100" json:"slug"`
	Description string `json:"description"`
}
