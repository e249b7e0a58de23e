package command

import (
	"context"
	"strings"

	"github.com/tair/bookstore-backend/internal/requests/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// CreateRequestCommand represents the command to request a book
type CreateRequestCommand struct {
	UserID     uint
	Title      string
	AuthorName string
}

// CreateRequestHandler handles the create request command
type CreateRequestHandler struct {
	repo domain.BookRequestRepository
}

// NewCreateRequestHandler creates a new create request handler
func NewCreateRequestHandler(repo domain.BookRequestRepository) *CreateRequestHandler {
	return &CreateRequestHandler{repo: repo}
}

// Handle executes the create request command
func (h *CreateRequestHandler) Handle(ctx context.Context, cmd CreateRequestCommand) (*domain.BookRequest, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, apperr.BadRequest("title is required")
	}

	request := &domain.BookRequest{
		Title:       strings.TrimSpace(cmd.Title),
		AuthorName:  strings.TrimSpace(cmd.AuthorName),
		RequestedBy: cmd.UserID,
		Status:      domain.StatusPending,
	}
	if err := h.repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
