package model

import "time"

// Comment is a reply attached to a review.
type Comment struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Text     string    `json:"text" gorm:"type:text;not null"`
	AuthorID uint      `json:"-" gorm:"not null;index"`
	Author   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ReviewID uint      `json:"-" gorm:"not null;index"`
	Review   Review    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PubDate  time.Time `json:"pub_date" gorm:"autoCreateTime;index"`
}
