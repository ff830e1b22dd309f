package model

import "time"

// Review is a scored write-up of a title. The composite unique index on
// (title_id, author_id) is what enforces one review per user per title;
// concurrent inserts race on the index, not on application code.
type Review struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Text     string    `json:"text" gorm:"type:text;not null"`
	AuthorID uint      `json:"-" gorm:"uniqueIndex:idx_reviews_title_author;not null"`
	Author   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TitleID  uint      `json:"-" gorm:"uniqueIndex:idx_reviews_title_author;not null"`
	Title    Title     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Score    int       `json:"score" gorm:"not null"`
	PubDate  time.Time `json:"pub_date" gorm:"autoCreateTime;index"`
}
