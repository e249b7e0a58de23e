package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalog "github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/internal/favorites/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// GormFavoritesRepository implements FavoritesRepository using GORM.
// Every mutation updates the join row and the denormalized
// favorites_count inside one transaction, so the counter can never
// drift from the row count.
type GormFavoritesRepository struct {
	db *gorm.DB
}

// NewGormFavoritesRepository creates a new GORM favorites repository
func NewGormFavoritesRepository(db *gorm.DB) *GormFavoritesRepository {
	return &GormFavoritesRepository{db: db}
}

// Add inserts the favorite row and increments the book's counter.
// Missing book is NotFound; an existing pair is Conflict, including
// the loser of a concurrent insert race.
func (r *GormFavoritesRepository) Add(ctx context.Context, userID uint, bookID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book catalog.Book
		if err := tx.Select("id").First(&book, "id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("book not found")
			}
			return apperr.Internal("failed to check book", err)
		}

		favorite := domain.Favorite{UserID: userID, BookID: bookID}
		if err := tx.Create(&favorite).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("book already in favorites")
			}
			return apperr.Internal("failed to add favorite", err)
		}

		err := tx.Model(&catalog.Book{}).
			Where("id = ?", bookID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error
		if err != nil {
			return apperr.Internal("failed to update favorites count", err)
		}
		return nil
	})
}

// Remove deletes the favorite row and decrements the book's counter.
// A pair that does not exist is NotFound; book existence is not
// separately required.
func (r *GormFavoritesRepository) Remove(ctx context.Context, userID uint, bookID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND book_id = ?", userID, bookID).Delete(&domain.Favorite{})
		if result.Error != nil {
			return apperr.Internal("failed to remove favorite", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("book not in favorites")
		}

		err := tx.Model(&catalog.Book{}).
			Where("id = ?", bookID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count - 1")).Error
		if err != nil {
			return apperr.Internal("failed to update favorites count", err)
		}
		return nil
	})
}

// ListBooks returns every book the user has favorited, with author
// and genre loaded.
func (r *GormFavoritesRepository) ListBooks(ctx context.Context, userID uint) ([]catalog.Book, error) {
	var books []catalog.Book
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Genre").
		Joins("JOIN favorites ON favorites.book_id = books.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&books).Error
	if err != nil {
		return nil, apperr.Internal("failed to list favorites", err)
	}
	return books, nil
}

// IsFavorite reports whether the pair exists
func (r *GormFavoritesRepository) IsFavorite(ctx context.Context, userID uint, bookID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error
	if err != nil {
		return false, apperr.Internal("failed to check favorite", err)
	}
	return count > 0, nil
}

// FavoriteBookIDs returns the ids of every book the user favorited
func (r *GormFavoritesRepository) FavoriteBookIDs(ctx context.Context, userID uint) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("book_id", &ids).Error
	if err != nil {
		return nil, apperr.Internal("failed to list favorite ids", err)
	}
	return ids, nil
}
