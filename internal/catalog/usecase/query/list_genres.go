package query

import (
	"github.com/tair/bookstore-backend/internal/catalog/domain"
)

// ListGenresQuery represents the query to list genres
type ListGenresQuery struct{}

// ListGenresHandler handles genre listings
type ListGenresHandler struct {
	genres domain.GenreRepository
}

// NewListGenresHandler creates a new list genres handler
func NewListGenresHandler(genres domain.GenreRepository) *ListGenresHandler {
	return &ListGenresHandler{genres: genres}
}

// Handle executes the list genres query
func (h *ListGenresHandler) Handle(ListGenresQuery) ([]domain.Genre, error) {
	return h.genres.FindAll()
}
