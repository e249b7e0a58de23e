package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// GormBookRepository implements BookRepository using GORM
type GormBookRepository struct {
	db *gorm.DB
}

// NewGormBookRepository creates a new GORM book repository
func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Create inserts a new book
func (r *GormBookRepository) Create(book *domain.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("book with this id already exists")
		}
		return apperr.Internal("failed to create book", err)
	}
	return nil
}

// FindByID retrieves a book by slug with author and genre loaded
func (r *GormBookRepository) FindByID(id string) (*domain.Book, error) {
	var book domain.Book
	err := r.db.Preload("Author").Preload("Genre").First(&book, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("book not found")
		}
		return nil, apperr.Internal("failed to find book", err)
	}
	return &book, nil
}

// FindAll retrieves books matching the filter
func (r *GormBookRepository) FindAll(filter domain.BookFilter) ([]domain.Book, error) {
	query := r.db.Preload("Author").Preload("Genre").Order("title")

	if filter.GenreID != nil {
		query = query.Where("genre_id = ?", *filter.GenreID)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.Year != nil {
		from := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("release_date >= ? AND release_date < ?", from, from.AddDate(1, 0, 0))
	}
	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Title+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var books []domain.Book
	if err := query.Find(&books).Error; err != nil {
		return nil, apperr.Internal("failed to list books", err)
	}
	return books, nil
}

// Update saves a modified book
func (r *GormBookRepository) Update(book *domain.Book) error {
	if err := r.db.Save(book).Error; err != nil {
		return apperr.Internal("failed to update book", err)
	}
	return nil
}

// Delete removes a book. Favorites and basket rows referencing it are
// dropped by the store's cascade constraints.
func (r *GormBookRepository) Delete(id string) error {
	result := r.db.Delete(&domain.Book{}, "id = ?", id)
	if result.Error != nil {
		return apperr.Internal("failed to delete book", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("book not found")
	}
	return nil
}

// Count returns the total number of books
func (r *GormBookRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Book{}).Count(&count).Error; err != nil {
		return 0, apperr.Internal("failed to count books", err)
	}
	return count, nil
}
