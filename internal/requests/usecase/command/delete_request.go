package command

import (
	"context"

	"github.com/tair/bookstore-backend/internal/requests/domain"
)

// DeleteRequestCommand represents the command to delete a book request
type DeleteRequestCommand struct {
	ID uint
}

// DeleteRequestHandler handles the delete request command
type DeleteRequestHandler struct {
	repo domain.BookRequestRepository
}

// NewDeleteRequestHandler creates a new delete request handler
func NewDeleteRequestHandler(repo domain.BookRequestRepository) *DeleteRequestHandler {
	return &DeleteRequestHandler{repo: repo}
}

// Handle executes the delete request command
func (h *DeleteRequestHandler) Handle(ctx context.Context, cmd DeleteRequestCommand) error {
	return h.repo.Delete(ctx, cmd.ID)
}
