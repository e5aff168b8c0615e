package models

import (
	"time"

	"gorm.io/gorm"
)

// News represents a published news item. News items are read-only from the
// user's perspective; they are seeded by migrations or fixtures.
type News struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255)" json:"title" validate:"required,min=1,max=255"`
	Text      string    `gorm:"type:text" json:"text" validate:"required"`
	Date      time.Time `gorm:"index" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}

// BeforeCreate defaults the publication date to the creation time.
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.Date.IsZero() {
		n.Date = time.Now()
	}
	return nil
}
