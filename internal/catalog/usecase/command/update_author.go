package command

import (
	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// UpdateAuthorCommand represents the command to update an author
type UpdateAuthorCommand struct {
	ID   uint
	Name *string
	Info *string
}

// UpdateAuthorHandler handles author updates
type UpdateAuthorHandler struct {
	authors domain.AuthorRepository
}

// NewUpdateAuthorHandler creates a new update author handler
func NewUpdateAuthorHandler(authors domain.AuthorRepository) *UpdateAuthorHandler {
	return &UpdateAuthorHandler{authors: authors}
}

// Handle executes the update author command
func (h *UpdateAuthorHandler) Handle(cmd UpdateAuthorCommand) (*domain.Author, error) {
	author, err := h.authors.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, apperr.BadRequest("name cannot be empty")
		}
		author.Name = *cmd.Name
	}
	if cmd.Info != nil {
		author.Info = *cmd.Info
	}

	author.Books = nil
	if err := h.authors.Update(author); err != nil {
		return nil, err
	}
	return author, nil
}
