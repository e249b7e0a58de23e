package command

import (
	"context"

	"github.com/tair/bookstore-backend/internal/basket/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// AddItemCommand represents the command to put a book in the basket.
// Quantity defaults to 1 when zero.
type AddItemCommand struct {
	UserID   uint
	BookID   string
	Quantity int
}

// AddItemHandler handles the add item command
type AddItemHandler struct {
	repo domain.BasketRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo domain.BasketRepository) *AddItemHandler {
	return &AddItemHandler{repo: repo}
}

// Handle executes the add item command
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*domain.BasketItem, error) {
	if cmd.BookID == "" {
		return nil, apperr.BadRequest("book id is required")
	}

	quantity := cmd.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, apperr.BadRequest("quantity must be a positive integer")
	}

	return h.repo.AddItem(ctx, cmd.UserID, cmd.BookID, quantity)
}
