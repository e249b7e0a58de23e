package query

import (
	"context"

	"github.com/tair/bookstore-backend/internal/requests/domain"
)

// ListRequestsQuery represents the query to list book requests. Admins
// see every request; regular users see only their own.
type ListRequestsQuery struct {
	UserID uint
	All    bool
}

// ListRequestsHandler handles the list requests query
type ListRequestsHandler struct {
	repo domain.BookRequestRepository
}

// NewListRequestsHandler creates a new list requests handler
func NewListRequestsHandler(repo domain.BookRequestRepository) *ListRequestsHandler {
	return &ListRequestsHandler{repo: repo}
}

// Handle executes the list requests query
func (h *ListRequestsHandler) Handle(ctx context.Context, q ListRequestsQuery) ([]domain.BookRequest, error) {
	if q.All {
		return h.repo.FindAll(ctx)
	}
	return h.repo.FindByUser(ctx, q.UserID)
}
