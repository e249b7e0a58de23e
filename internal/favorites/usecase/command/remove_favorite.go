package command

import (
	"context"

	"github.com/tair/bookstore-backend/internal/favorites/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// RemoveFavoriteCommand represents the command to unfavorite a book
type RemoveFavoriteCommand struct {
	UserID uint
	BookID string
}

// RemoveFavoriteHandler handles the remove favorite command
type RemoveFavoriteHandler struct {
	repo domain.FavoritesRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.FavoritesRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo}
}

// Handle executes the remove favorite command
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	if cmd.BookID == "" {
		return apperr.BadRequest("book id is required")
	}
	return h.repo.Remove(ctx, cmd.UserID, cmd.BookID)
}
