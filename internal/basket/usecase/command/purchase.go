package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/tair/bookstore-backend/internal/basket/domain"
	"github.com/tair/bookstore-backend/kafka"
	"github.com/tair/bookstore-backend/pkg/logger"
)

// EventPublisher emits order events after a purchase commits
type EventPublisher interface {
	PublishOrderPurchased(ctx context.Context, event kafka.OrderPurchasedEvent) error
}

// PurchaseCommand represents the command to purchase the basket
type PurchaseCommand struct {
	UserID uint
}

// PurchaseResult summarizes a committed purchase
type PurchaseResult struct {
	OrderID string              `json:"order_id"`
	Items   []domain.BasketItem `json:"items"`
	Total   float64             `json:"total"`
}

// PurchaseHandler handles the purchase command
type PurchaseHandler struct {
	repo      domain.BasketRepository
	publisher EventPublisher // nil when Kafka is not configured
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(repo domain.BasketRepository, publisher EventPublisher) *PurchaseHandler {
	return &PurchaseHandler{repo: repo, publisher: publisher}
}

// Handle executes the purchase command. The state transition commits
// first; event publishing is best-effort and never fails the purchase.
func (h *PurchaseHandler) Handle(ctx context.Context, cmd PurchaseCommand) (*PurchaseResult, error) {
	items, err := h.repo.Purchase(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	result := &PurchaseResult{
		OrderID: uuid.New().String(),
		Items:   items,
	}
	for _, item := range items {
		if item.Book != nil {
			result.Total += item.Book.Price * float64(item.Quantity)
		}
	}

	if h.publisher != nil {
		event := kafka.OrderPurchasedEvent{
			OrderID: result.OrderID,
			UserID:  cmd.UserID,
			Total:   result.Total,
		}
		for _, item := range items {
			orderItem := kafka.OrderItem{
				BookID:   item.BookID,
				Quantity: item.Quantity,
			}
			if item.Book != nil {
				orderItem.Title = item.Book.Title
				orderItem.Price = item.Book.Price
			}
			event.Items = append(event.Items, orderItem)
		}

		if err := h.publisher.PublishOrderPurchased(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Str("order_id", result.OrderID).Msg("failed to publish order event")
		}
	}

	return result, nil
}
