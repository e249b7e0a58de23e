package query

import (
	"context"

	"github.com/tair/bookstore-backend/internal/catalog/domain"
)

// GetBookQuery represents the query to fetch a single book
type GetBookQuery struct {
	ID     string
	UserID uint
}

// GetBookHandler handles single book lookups
type GetBookHandler struct {
	books     domain.BookRepository
	favorites domain.FavoriteChecker
}

// NewGetBookHandler creates a new get book handler
func NewGetBookHandler(books domain.BookRepository, favorites domain.FavoriteChecker) *GetBookHandler {
	return &GetBookHandler{books: books, favorites: favorites}
}

// Handle executes the get book query
func (h *GetBookHandler) Handle(ctx context.Context, q GetBookQuery) (*BookResponse, error) {
	book, err := h.books.FindByID(q.ID)
	if err != nil {
		return nil, err
	}

	isFavorite := false
	if q.UserID != 0 {
		isFavorite, err = h.favorites.IsFavorite(ctx, q.UserID, book.ID)
		if err != nil {
			return nil, err
		}
	}

	resp := NewBookResponse(book, isFavorite)
	return &resp, nil
}
