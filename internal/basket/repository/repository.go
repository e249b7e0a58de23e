package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/basket/domain"
	catalog "github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// GormBasketRepository implements BasketRepository using GORM. Every
// transition runs inside a transaction; the (user_id, book_id) unique
// index settles concurrent adds.
type GormBasketRepository struct {
	db *gorm.DB
}

// NewGormBasketRepository creates a new GORM basket repository
func NewGormBasketRepository(db *gorm.DB) *GormBasketRepository {
	return &GormBasketRepository{db: db}
}

// AddItem drives the add transition: no row creates an active one,
// a removed or purchased row is reactivated with the requested
// quantity, an active row is a conflict.
func (r *GormBasketRepository) AddItem(ctx context.Context, userID uint, bookID string, quantity int) (*domain.BasketItem, error) {
	var item *domain.BasketItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book catalog.Book
		if err := tx.Select("id").First(&book, "id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("book not found")
			}
			return apperr.Internal("failed to check book", err)
		}

		var existing domain.BasketItem
		err := tx.Where("user_id = ? AND book_id = ?", userID, bookID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := domain.BasketItem{
				UserID:   userID,
				BookID:   bookID,
				Quantity: quantity,
				Status:   domain.StatusActive,
			}
			if err := tx.Create(&created).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// Lost a concurrent add for the same pair
					return apperr.Conflict("book already in basket")
				}
				return apperr.Internal("failed to add basket item", err)
			}
			item = &created
			return nil

		case err != nil:
			return apperr.Internal("failed to check basket", err)

		case existing.Status == domain.StatusActive:
			return apperr.Conflict("book already in basket")

		default:
			// removed or purchased: reactivate with the new quantity
			existing.Status = domain.StatusActive
			existing.Quantity = quantity
			if err := tx.Save(&existing).Error; err != nil {
				return apperr.Internal("failed to reactivate basket item", err)
			}
			item = &existing
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// SoftRemove transitions an active row to removed
func (r *GormBasketRepository) SoftRemove(ctx context.Context, userID uint, bookID string) error {
	result := r.db.WithContext(ctx).Model(&domain.BasketItem{}).
		Where("user_id = ? AND book_id = ? AND status = ?", userID, bookID, domain.StatusActive).
		Update("status", domain.StatusRemoved)
	if result.Error != nil {
		return apperr.Internal("failed to remove basket item", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("book not in basket")
	}
	return nil
}

// HardRemove deletes the row. Rows already soft-removed are treated
// as absent.
func (r *GormBasketRepository) HardRemove(ctx context.Context, userID uint, bookID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ? AND status <> ?", userID, bookID, domain.StatusRemoved).
		Delete(&domain.BasketItem{})
	if result.Error != nil {
		return apperr.Internal("failed to delete basket item", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("book not in basket")
	}
	return nil
}

// Purchase transitions every active row to purchased in one
// transaction. An empty active basket is a conflict; partial
// application cannot happen.
func (r *GormBasketRepository) Purchase(ctx context.Context, userID uint) ([]domain.BasketItem, error) {
	var items []domain.BasketItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Book").Preload("Book.Author").Preload("Book.Genre").
			Where("user_id = ? AND status = ?", userID, domain.StatusActive).
			Find(&items).Error
		if err != nil {
			return apperr.Internal("failed to load basket", err)
		}
		if len(items) == 0 {
			return apperr.Conflict("basket is empty")
		}

		result := tx.Model(&domain.BasketItem{}).
			Where("user_id = ? AND status = ?", userID, domain.StatusActive).
			Update("status", domain.StatusPurchased)
		if result.Error != nil {
			return apperr.Internal("failed to purchase basket", result.Error)
		}

		for i := range items {
			items[i].Status = domain.StatusPurchased
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ActiveItems returns the current basket with book data loaded
func (r *GormBasketRepository) ActiveItems(ctx context.Context, userID uint) ([]domain.BasketItem, error) {
	var items []domain.BasketItem
	err := r.db.WithContext(ctx).
		Preload("Book").Preload("Book.Author").Preload("Book.Genre").
		Where("user_id = ? AND status = ?", userID, domain.StatusActive).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Internal("failed to load basket", err)
	}
	return items, nil
}
