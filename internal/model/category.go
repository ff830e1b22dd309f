package model

// Category groups titles by kind (film, book, ...). Slug is the public key.
type Category struct {
	ID   uint   `json:"-" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:60;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:60;not null"`
}
