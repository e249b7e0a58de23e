package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/basket/domain"
)

var tracer = otel.Tracer("basket-repository")

// GormBasketRepositoryWithTracing wraps the basket repository with
// OpenTelemetry spans.
type GormBasketRepositoryWithTracing struct {
	*GormBasketRepository
}

// NewGormBasketRepositoryWithTracing creates a traced repository
func NewGormBasketRepositoryWithTracing(db *gorm.DB) *GormBasketRepositoryWithTracing {
	return &GormBasketRepositoryWithTracing{
		GormBasketRepository: NewGormBasketRepository(db),
	}
}

// AddItem with tracing
func (r *GormBasketRepositoryWithTracing) AddItem(ctx context.Context, userID uint, bookID string, quantity int) (*domain.BasketItem, error) {
	ctx, span := tracer.Start(ctx, "repository.basket.AddItem",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.String("book.id", bookID),
			attribute.Int("basket.quantity", quantity),
		),
	)
	defer span.End()

	item, err := r.GormBasketRepository.AddItem(ctx, userID, bookID, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("basket.item_id", int(item.ID)))
	return item, nil
}

// SoftRemove with tracing
func (r *GormBasketRepositoryWithTracing) SoftRemove(ctx context.Context, userID uint, bookID string) error {
	ctx, span := tracer.Start(ctx, "repository.basket.SoftRemove",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.String("book.id", bookID),
		),
	)
	defer span.End()

	if err := r.GormBasketRepository.SoftRemove(ctx, userID, bookID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// HardRemove with tracing
func (r *GormBasketRepositoryWithTracing) HardRemove(ctx context.Context, userID uint, bookID string) error {
	ctx, span := tracer.Start(ctx, "repository.basket.HardRemove",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.String("book.id", bookID),
		),
	)
	defer span.End()

	if err := r.GormBasketRepository.HardRemove(ctx, userID, bookID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Purchase with tracing
func (r *GormBasketRepositoryWithTracing) Purchase(ctx context.Context, userID uint) ([]domain.BasketItem, error) {
	ctx, span := tracer.Start(ctx, "repository.basket.Purchase",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	items, err := r.GormBasketRepository.Purchase(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("basket.purchased_items", len(items)))
	return items, nil
}

// ActiveItems with tracing
func (r *GormBasketRepositoryWithTracing) ActiveItems(ctx context.Context, userID uint) ([]domain.BasketItem, error) {
	ctx, span := tracer.Start(ctx, "repository.basket.ActiveItems",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	items, err := r.GormBasketRepository.ActiveItems(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("basket.active_items", len(items)))
	return items, nil
}
