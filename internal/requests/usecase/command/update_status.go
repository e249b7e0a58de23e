package command

import (
	"context"

	"github.com/tair/bookstore-backend/internal/requests/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// UpdateRequestStatusCommand represents the command to approve or
// reject a book request
type UpdateRequestStatusCommand struct {
	ID     uint
	Status string
}

// UpdateRequestStatusHandler handles the update status command
type UpdateRequestStatusHandler struct {
	repo domain.BookRequestRepository
}

// NewUpdateRequestStatusHandler creates a new update status handler
func NewUpdateRequestStatusHandler(repo domain.BookRequestRepository) *UpdateRequestStatusHandler {
	return &UpdateRequestStatusHandler{repo: repo}
}

// Handle executes the update status command
func (h *UpdateRequestStatusHandler) Handle(ctx context.Context, cmd UpdateRequestStatusCommand) (*domain.BookRequest, error) {
	if !domain.ValidStatus(cmd.Status) {
		return nil, apperr.BadRequest("unknown request status")
	}
	return h.repo.UpdateStatus(ctx, cmd.ID, cmd.Status)
}
