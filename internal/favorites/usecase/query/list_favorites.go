package query

import (
	"context"

	catalogquery "github.com/tair/bookstore-backend/internal/catalog/usecase/query"
	"github.com/tair/bookstore-backend/internal/favorites/domain"
)

// ListFavoritesQuery represents the query to list a user's favorites
type ListFavoritesQuery struct {
	UserID uint
}

// ListFavoritesHandler handles the list favorites query
type ListFavoritesHandler struct {
	repo domain.FavoritesRepository
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(repo domain.FavoritesRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

// Handle executes the list favorites query. Every returned book is
// annotated is_favorite by construction.
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]catalogquery.BookResponse, error) {
	books, err := h.repo.ListBooks(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]catalogquery.BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, catalogquery.NewBookResponse(&books[i], true))
	}
	return responses, nil
}
