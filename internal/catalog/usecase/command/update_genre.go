package command

import (
	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// UpdateGenreCommand represents the command to update a genre
type UpdateGenreCommand struct {
	ID   uint
	Name *string
	Img  *string
}

// UpdateGenreHandler handles genre updates
type UpdateGenreHandler struct {
	genres domain.GenreRepository
}

// NewUpdateGenreHandler creates a new update genre handler
func NewUpdateGenreHandler(genres domain.GenreRepository) *UpdateGenreHandler {
	return &UpdateGenreHandler{genres: genres}
}

// Handle executes the update genre command
func (h *UpdateGenreHandler) Handle(cmd UpdateGenreCommand) (*domain.Genre, error) {
	genre, err := h.genres.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, apperr.BadRequest("name cannot be empty")
		}
		genre.Name = *cmd.Name
	}
	if cmd.Img != nil {
		genre.Img = *cmd.Img
	}

	genre.Books = nil
	if err := h.genres.Update(genre); err != nil {
		return nil, err
	}
	return genre, nil
}
