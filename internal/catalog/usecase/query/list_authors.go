package query

import (
	"github.com/tair/bookstore-backend/internal/catalog/domain"
)

// ListAuthorsQuery represents the query to list authors
type ListAuthorsQuery struct {
	Limit  int
	Offset int
}

// ListAuthorsHandler handles author listings
type ListAuthorsHandler struct {
	authors domain.AuthorRepository
}

// NewListAuthorsHandler creates a new list authors handler
func NewListAuthorsHandler(authors domain.AuthorRepository) *ListAuthorsHandler {
	return &ListAuthorsHandler{authors: authors}
}

// Handle executes the list authors query
func (h *ListAuthorsHandler) Handle(q ListAuthorsQuery) ([]domain.Author, error) {
	return h.authors.FindAll(q.Limit, q.Offset)
}

// GetAuthorQuery represents the query to fetch one author with books
type GetAuthorQuery struct {
	ID uint
}

// GetAuthorHandler handles single author lookups
type GetAuthorHandler struct {
	authors domain.AuthorRepository
}

// NewGetAuthorHandler creates a new get author handler
func NewGetAuthorHandler(authors domain.AuthorRepository) *GetAuthorHandler {
	return &GetAuthorHandler{authors: authors}
}

// Handle executes the get author query
func (h *GetAuthorHandler) Handle(q GetAuthorQuery) (*domain.Author, error) {
	return h.authors.FindByID(q.ID)
}
