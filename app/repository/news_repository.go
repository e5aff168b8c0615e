package repository

import (
	"github.com/newsnotes-app/newsnotes/app/models"
	"gorm.io/gorm"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news item in the database
func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID retrieves a news item by its ID
func (r *newsRepository) GetByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetLatest retrieves the most recent news items by publication date,
// truncated to limit.
func (r *newsRepository) GetLatest(limit int) ([]models.News, error) {
	var news []models.News
	err := r.db.Order("date DESC, id DESC").Limit(limit).Find(&news).Error
	return news, err
}

// Count returns the total number of news items
func (r *newsRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.News{}).Count(&count).Error
	return count, err
}
