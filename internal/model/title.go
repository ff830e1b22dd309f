package model

// Title is a reviewable media item. Its rating is never stored; it is
// derived from the associated review scores at query time.
type Title struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:60;not null;index"`
	Year        int       `json:"year" gorm:"not null"`
	CategoryID  *uint     `json:"-" gorm:"index"`
	Category    *Category `json:"category,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Genres      []Genre   `json:"genre" gorm:"many2many:title_genres"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
}
