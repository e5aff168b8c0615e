package models

import (
	"time"

	"github.com/newsnotes-app/newsnotes/internal/pkg/utils"
)

// Comment belongs to exactly one news item and one author. Only the author
// may edit or delete it; everyone may read it on the news detail page.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NewsID    uint      `gorm:"index" json:"news_id"`
	News      News      `gorm:"foreignKey:NewsID" json:"news,omitempty"`
	UserID    uint      `gorm:"index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Text      string    `gorm:"type:text" json:"text" validate:"required,min=1"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// AvatarURL returns the Gravatar URL for the comment author. The User
// association must be preloaded.
func (cm *Comment) AvatarURL() string {
	return utils.GetGravatarURL(cm.User.Email, 48)
}
