package domain

import (
	"context"
	"time"

	catalog "github.com/tair/bookstore-backend/internal/catalog/domain"
	user "github.com/tair/bookstore-backend/internal/user/domain"
)

// Basket item lifecycle states
const (
	StatusActive    = "active"
	StatusRemoved   = "removed"
	StatusPurchased = "purchased"
)

// BasketItem is the per-(user, book) line item. The composite unique
// index guarantees at most one row per pair; lifecycle changes reuse
// the row instead of creating duplicates.
type BasketItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_basket_user_book"`
	BookID    string    `json:"book_id" gorm:"not null;index;uniqueIndex:idx_basket_user_book"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	Status    string    `json:"status" gorm:"not null;default:'active'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *user.User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Book *catalog.Book `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (BasketItem) TableName() string {
	return "basket_items"
}

// IsActive reports whether the item counts toward the current basket
func (b *BasketItem) IsActive() bool {
	return b.Status == StatusActive
}

// BasketRepository drives the basket state machine. All transitions
// are transactional; Purchase moves every active row at once or none.
type BasketRepository interface {
	// AddItem creates an active row, or reactivates a removed or
	// purchased one with the requested quantity. An already-active
	// row is a conflict.
	AddItem(ctx context.Context, userID uint, bookID string, quantity int) (*BasketItem, error)
	// SoftRemove transitions active -> removed
	SoftRemove(ctx context.Context, userID uint, bookID string) error
	// HardRemove deletes the row outright; absent or soft-removed
	// rows are not found
	HardRemove(ctx context.Context, userID uint, bookID string) error
	// Purchase transitions every active row to purchased and returns
	// them with book data loaded
	Purchase(ctx context.Context, userID uint) ([]BasketItem, error)
	// ActiveItems returns the current basket with book data loaded
	ActiveItems(ctx context.Context, userID uint) ([]BasketItem, error)
}
