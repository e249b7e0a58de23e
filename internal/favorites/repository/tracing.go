package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	catalog "github.com/tair/bookstore-backend/internal/catalog/domain"
)

var tracer = otel.Tracer("favorites-repository")

// GormFavoritesRepositoryWithTracing wraps the favorites repository
// with OpenTelemetry spans.
type GormFavoritesRepositoryWithTracing struct {
	*GormFavoritesRepository
}

// NewGormFavoritesRepositoryWithTracing creates a traced repository
func NewGormFavoritesRepositoryWithTracing(db *gorm.DB) *GormFavoritesRepositoryWithTracing {
	return &GormFavoritesRepositoryWithTracing{
		GormFavoritesRepository: NewGormFavoritesRepository(db),
	}
}

// Add with tracing
func (r *GormFavoritesRepositoryWithTracing) Add(ctx context.Context, userID uint, bookID string) error {
	ctx, span := tracer.Start(ctx, "repository.favorites.Add",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.String("book.id", bookID),
		),
	)
	defer span.End()

	if err := r.GormFavoritesRepository.Add(ctx, userID, bookID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Remove with tracing
func (r *GormFavoritesRepositoryWithTracing) Remove(ctx context.Context, userID uint, bookID string) error {
	ctx, span := tracer.Start(ctx, "repository.favorites.Remove",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.String("book.id", bookID),
		),
	)
	defer span.End()

	if err := r.GormFavoritesRepository.Remove(ctx, userID, bookID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// ListBooks with tracing
func (r *GormFavoritesRepositoryWithTracing) ListBooks(ctx context.Context, userID uint) ([]catalog.Book, error) {
	ctx, span := tracer.Start(ctx, "repository.favorites.ListBooks",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	books, err := r.GormFavoritesRepository.ListBooks(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("favorites.count", len(books)))
	return books, nil
}
