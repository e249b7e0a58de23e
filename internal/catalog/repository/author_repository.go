package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// GormAuthorRepository implements AuthorRepository using GORM
type GormAuthorRepository struct {
	db *gorm.DB
}

// NewGormAuthorRepository creates a new GORM author repository
func NewGormAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

// Create inserts a new author
func (r *GormAuthorRepository) Create(author *domain.Author) error {
	if err := r.db.Create(author).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("author already exists")
		}
		return apperr.Internal("failed to create author", err)
	}
	return nil
}

// FindByID retrieves an author with their books
func (r *GormAuthorRepository) FindByID(id uint) (*domain.Author, error) {
	var author domain.Author
	if err := r.db.Preload("Books").First(&author, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("author not found")
		}
		return nil, apperr.Internal("failed to find author", err)
	}
	return &author, nil
}

// FindAll retrieves authors with pagination
func (r *GormAuthorRepository) FindAll(limit, offset int) ([]domain.Author, error) {
	query := r.db.Order("name")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var authors []domain.Author
	if err := query.Find(&authors).Error; err != nil {
		return nil, apperr.Internal("failed to list authors", err)
	}
	return authors, nil
}

// Update saves a modified author
func (r *GormAuthorRepository) Update(author *domain.Author) error {
	if err := r.db.Save(author).Error; err != nil {
		return apperr.Internal("failed to update author", err)
	}
	return nil
}

// Delete removes an author
func (r *GormAuthorRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Author{}, id)
	if result.Error != nil {
		return apperr.Internal("failed to delete author", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("author not found")
	}
	return nil
}
