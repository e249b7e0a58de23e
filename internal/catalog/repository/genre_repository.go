package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// GormGenreRepository implements GenreRepository using GORM
type GormGenreRepository struct {
	db *gorm.DB
}

// NewGormGenreRepository creates a new GORM genre repository
func NewGormGenreRepository(db *gorm.DB) *GormGenreRepository {
	return &GormGenreRepository{db: db}
}

// Create inserts a new genre
func (r *GormGenreRepository) Create(genre *domain.Genre) error {
	if err := r.db.Create(genre).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("genre already exists")
		}
		return apperr.Internal("failed to create genre", err)
	}
	return nil
}

// FindByID retrieves a genre by ID
func (r *GormGenreRepository) FindByID(id uint) (*domain.Genre, error) {
	var genre domain.Genre
	if err := r.db.First(&genre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("genre not found")
		}
		return nil, apperr.Internal("failed to find genre", err)
	}
	return &genre, nil
}

// FindAll retrieves all genres
func (r *GormGenreRepository) FindAll() ([]domain.Genre, error) {
	var genres []domain.Genre
	if err := r.db.Order("name").Find(&genres).Error; err != nil {
		return nil, apperr.Internal("failed to list genres", err)
	}
	return genres, nil
}

// Update saves a modified genre
func (r *GormGenreRepository) Update(genre *domain.Genre) error {
	if err := r.db.Save(genre).Error; err != nil {
		return apperr.Internal("failed to update genre", err)
	}
	return nil
}

// Delete removes a genre
func (r *GormGenreRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Genre{}, id)
	if result.Error != nil {
		return apperr.Internal("failed to delete genre", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("genre not found")
	}
	return nil
}
