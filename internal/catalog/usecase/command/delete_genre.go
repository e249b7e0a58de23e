package command

import (
	"github.com/tair/bookstore-backend/internal/catalog/domain"
)

// DeleteGenreCommand represents the command to delete a genre
type DeleteGenreCommand struct {
	ID uint
}

// DeleteGenreHandler handles genre deletion
type DeleteGenreHandler struct {
	genres domain.GenreRepository
}

// NewDeleteGenreHandler creates a new delete genre handler
func NewDeleteGenreHandler(genres domain.GenreRepository) *DeleteGenreHandler {
	return &DeleteGenreHandler{genres: genres}
}

// Handle executes the delete genre command
func (h *DeleteGenreHandler) Handle(cmd DeleteGenreCommand) error {
	return h.genres.Delete(cmd.ID)
}
