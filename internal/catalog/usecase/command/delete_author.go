package command

import (
	"github.com/tair/bookstore-backend/internal/catalog/domain"
)

// DeleteAuthorCommand represents the command to delete an author
type DeleteAuthorCommand struct {
	ID uint
}

// DeleteAuthorHandler handles author deletion
type DeleteAuthorHandler struct {
	authors domain.AuthorRepository
}

// NewDeleteAuthorHandler creates a new delete author handler
func NewDeleteAuthorHandler(authors domain.AuthorRepository) *DeleteAuthorHandler {
	return &DeleteAuthorHandler{authors: authors}
}

// Handle executes the delete author command
func (h *DeleteAuthorHandler) Handle(cmd DeleteAuthorCommand) error {
	return h.authors.Delete(cmd.ID)
}
