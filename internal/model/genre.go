package model

// Genre tags titles; a title may carry any number of genres.
type Genre struct {
	ID   uint   `json:"-" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:60;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:60;not null"`
}
