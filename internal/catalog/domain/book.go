package domain

import (
	"context"
	"time"
)

// Book represents a catalog item. The ID is an admin-chosen slug, not
// an auto-increment key.
type Book struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Title          string     `json:"title" gorm:"not null"`
	Description    string     `json:"description"`
	GenreID        *uint      `json:"genre_id" gorm:"index"`
	AuthorID       uint       `json:"author_id" gorm:"not null;index"`
	ReleaseDate    *time.Time `json:"release_date" gorm:"type:date"`
	Price          float64    `json:"price" gorm:"not null;default:0"`
	FavoritesCount int        `json:"favorites_count" gorm:"not null;default:0"`
	Img            string     `json:"img"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Genre  *Genre  `json:"genre,omitempty" gorm:"foreignKey:GenreID"`
	Author *Author `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName specifies the table name
func (Book) TableName() string {
	return "books"
}

// BookFilter narrows shop listings
type BookFilter struct {
	GenreID  *uint
	AuthorID *uint
	Year     *int
	Title    string
	Limit    int
	Offset   int
}

// BookRepository defines the contract for book data access
type BookRepository interface {
	Create(book *Book) error
	FindByID(id string) (*Book, error)
	FindAll(filter BookFilter) ([]Book, error)
	Update(book *Book) error
	Delete(id string) error
	Count() (int64, error)
}

// FavoriteChecker reports favorite membership for catalog reads. It
// is implemented by the favorites ledger; declaring it here keeps the
// dependency pointing in one direction.
type FavoriteChecker interface {
	IsFavorite(ctx context.Context, userID uint, bookID string) (bool, error)
	FavoriteBookIDs(ctx context.Context, userID uint) ([]string, error)
}
