package domain

import (
	"context"
	"time"

	catalog "github.com/tair/bookstore-backend/internal/catalog/domain"
	user "github.com/tair/bookstore-backend/internal/user/domain"
)

// Favorite is the join row between a user and a favorited book. The
// composite unique index is the final arbiter under concurrent adds.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favorites_user_book"`
	BookID    string    `json:"book_id" gorm:"not null;index;uniqueIndex:idx_favorites_user_book"`
	CreatedAt time.Time `json:"created_at"`

	User *user.User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Book *catalog.Book `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// FavoritesRepository is the ledger over favorite rows. Add and
// Remove pair the row mutation with the book's favorites_count change
// in a single transaction.
type FavoritesRepository interface {
	Add(ctx context.Context, userID uint, bookID string) error
	Remove(ctx context.Context, userID uint, bookID string) error
	ListBooks(ctx context.Context, userID uint) ([]catalog.Book, error)
	IsFavorite(ctx context.Context, userID uint, bookID string) (bool, error)
	FavoriteBookIDs(ctx context.Context, userID uint) ([]string, error)
}
