package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const noteSlugMaxLength = 100

// Note is a private per-user note. The slug is unique across all notes, not
// per author, and is derived from the title when the author leaves it empty.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(100)" json:"title" validate:"required,min=1,max=100"`
	Text      string    `gorm:"type:text" json:"text" validate:"required"`
	Slug      string    `gorm:"uniqueIndex;type:varchar(100)" json:"slug" validate:"max=100"`
	UserID    uint      `gorm:"index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Note model
func (Note) TableName() string {
	return "notes"
}

// BeforeSave derives the slug from the title when none was supplied, so notes
// created outside the form flow (fixtures, seeds) get one too.
func (n *Note) BeforeSave(tx *gorm.DB) error {
	if n.Slug == "" {
		n.Slug = MakeNoteSlug(n.Title)
	}
	return nil
}

// MakeNoteSlug transliterates and slugifies a note title into a URL-safe
// ASCII slug, truncated to the slug column width.
func MakeNoteSlug(title string) string {
	s := slug.Make(title)
	if len(s) > noteSlugMaxLength {
		s = s[:noteSlugMaxLength]
	}
	return s
}
