package command

import (
	"context"

	"github.com/tair/bookstore-backend/internal/favorites/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// AddFavoriteCommand represents the command to favorite a book
type AddFavoriteCommand struct {
	UserID uint
	BookID string
}

// AddFavoriteHandler handles the add favorite command
type AddFavoriteHandler struct {
	repo domain.FavoritesRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(repo domain.FavoritesRepository) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo}
}

// Handle executes the add favorite command
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) error {
	if cmd.BookID == "" {
		return apperr.BadRequest("book id is required")
	}
	return h.repo.Add(ctx, cmd.UserID, cmd.BookID)
}
