package repository

import (
	"github.com/newsnotes-app/newsnotes/app/models"
	"gorm.io/gorm"
)

// noteRepository implements the NoteRepository interface
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository instance
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create creates a new note in the database
func (r *noteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetBySlugAndAuthor retrieves a note by its slug, scoped to its author.
// A note owned by someone else yields gorm.ErrRecordNotFound.
func (r *noteRepository) GetBySlugAndAuthor(slug string, userID uint) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("slug = ? AND user_id = ?", slug, userID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetByAuthor retrieves all notes of the given user
func (r *noteRepository) GetByAuthor(userID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&notes).Error
	return notes, err
}

// Update updates an existing note in the database
func (r *noteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

// Delete deletes a note by its ID
func (r *noteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Note{}, id).Error
}

// SlugExists checks if a slug is already taken, across all authors
func (r *noteRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug is taken by any note other than the given one
func (r *noteRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

// Count returns the total number of notes
func (r *noteRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Count(&count).Error
	return count, err
}
