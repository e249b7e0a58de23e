package command

import (
	"context"

	"github.com/tair/bookstore-backend/internal/basket/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// RemoveItemCommand represents the command to take a book out of the
// basket. Purge controls whether the row is soft-removed (the default,
// keeps it reactivatable) or deleted outright.
type RemoveItemCommand struct {
	UserID uint
	BookID string
	Purge  bool
}

// RemoveItemHandler handles the remove item command
type RemoveItemHandler struct {
	repo domain.BasketRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(repo domain.BasketRepository) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if cmd.BookID == "" {
		return apperr.BadRequest("book id is required")
	}

	if cmd.Purge {
		return h.repo.HardRemove(ctx, cmd.UserID, cmd.BookID)
	}
	return h.repo.SoftRemove(ctx, cmd.UserID, cmd.BookID)
}
