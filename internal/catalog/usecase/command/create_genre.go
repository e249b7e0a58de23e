package command

import (
	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// CreateGenreCommand represents the command to create a genre
type CreateGenreCommand struct {
	Name string
	Img  string
}

// CreateGenreHandler handles genre creation
type CreateGenreHandler struct {
	genres domain.GenreRepository
}

// NewCreateGenreHandler creates a new create genre handler
func NewCreateGenreHandler(genres domain.GenreRepository) *CreateGenreHandler {
	return &CreateGenreHandler{genres: genres}
}

// Handle executes the create genre command
func (h *CreateGenreHandler) Handle(cmd CreateGenreCommand) (*domain.Genre, error) {
	if cmd.Name == "" {
		return nil, apperr.BadRequest("name is required")
	}

	genre := &domain.Genre{Name: cmd.Name, Img: cmd.Img}
	if err := h.genres.Create(genre); err != nil {
		return nil, err
	}
	return genre, nil
}
