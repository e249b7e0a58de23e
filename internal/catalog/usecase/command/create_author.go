package command

import (
	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// CreateAuthorCommand represents the command to create an author
type CreateAuthorCommand struct {
	Name string
	Info string
}

// CreateAuthorHandler handles author creation
type CreateAuthorHandler struct {
	authors domain.AuthorRepository
}

// NewCreateAuthorHandler creates a new create author handler
func NewCreateAuthorHandler(authors domain.AuthorRepository) *CreateAuthorHandler {
	return &CreateAuthorHandler{authors: authors}
}

// Handle executes the create author command
func (h *CreateAuthorHandler) Handle(cmd CreateAuthorCommand) (*domain.Author, error) {
	if cmd.Name == "" {
		return nil, apperr.BadRequest("name is required")
	}

	author := &domain.Author{Name: cmd.Name, Info: cmd.Info}
	if err := h.authors.Create(author); err != nil {
		return nil, err
	}
	return author, nil
}
