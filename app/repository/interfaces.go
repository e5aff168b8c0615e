package repository

import (
	"github.com/newsnotes-app/newsnotes/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByName(name string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// NewsRepository defines the interface for news-related database operations
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint) (*models.News, error)
	GetLatest(limit int) ([]models.News, error)
	Count() (int64, error)
}

// CommentRepository defines the interface for comment-related database
// operations. GetByIDAndAuthor scopes the lookup to the requesting user, so
// a foreign comment is indistinguishable from a missing one.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	GetByIDAndAuthor(id, userID uint) (*models.Comment, error)
	GetByNewsID(newsID uint) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
	Count() (int64, error)
	CountByNewsID(newsID uint) (int64, error)
}

// NoteRepository defines the interface for note-related database operations.
// All per-note getters are author-scoped; slug existence checks are global
// because the slug is unique across the whole table.
type NoteRepository interface {
	Create(note *models.Note) error
	GetBySlugAndAuthor(slug string, userID uint) (*models.Note, error)
	GetByAuthor(userID uint) ([]models.Note, error)
	Update(note *models.Note) error
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	News    NewsRepository
	Comment CommentRepository
	Note    NoteRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		News:    NewNewsRepository(db),
		Comment: NewCommentRepository(db),
		Note:    NewNoteRepository(db),
	}
}
