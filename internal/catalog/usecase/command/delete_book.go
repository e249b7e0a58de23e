package command

import (
	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// DeleteBookCommand represents the command to delete a book
type DeleteBookCommand struct {
	ID string
}

// DeleteBookHandler handles book deletion
type DeleteBookHandler struct {
	books domain.BookRepository
}

// NewDeleteBookHandler creates a new delete book handler
func NewDeleteBookHandler(books domain.BookRepository) *DeleteBookHandler {
	return &DeleteBookHandler{books: books}
}

// Handle executes the delete book command
func (h *DeleteBookHandler) Handle(cmd DeleteBookCommand) error {
	if cmd.ID == "" {
		return apperr.BadRequest("book id is required")
	}
	return h.books.Delete(cmd.ID)
}
