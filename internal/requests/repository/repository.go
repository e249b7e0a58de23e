package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/requests/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// GormBookRequestRepository implements BookRequestRepository using GORM
type GormBookRequestRepository struct {
	db *gorm.DB
}

// NewGormBookRequestRepository creates a new GORM book request repository
func NewGormBookRequestRepository(db *gorm.DB) *GormBookRequestRepository {
	return &GormBookRequestRepository{db: db}
}

// Create inserts a new book request
func (r *GormBookRequestRepository) Create(ctx context.Context, request *domain.BookRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return apperr.Internal("failed to create book request", err)
	}
	return nil
}

// FindAll retrieves every book request, newest first
func (r *GormBookRequestRepository) FindAll(ctx context.Context) ([]domain.BookRequest, error) {
	var requests []domain.BookRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, apperr.Internal("failed to list book requests", err)
	}
	return requests, nil
}

// FindByUser retrieves the requests a user has filed, newest first
func (r *GormBookRequestRepository) FindByUser(ctx context.Context, userID uint) ([]domain.BookRequest, error) {
	var requests []domain.BookRequest
	err := r.db.WithContext(ctx).
		Where("requested_by = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, apperr.Internal("failed to list book requests", err)
	}
	return requests, nil
}

// UpdateStatus moves a request to the given state and returns the
// updated row. A missing request is NotFound.
func (r *GormBookRequestRepository) UpdateStatus(ctx context.Context, id uint, status string) (*domain.BookRequest, error) {
	var request domain.BookRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("book request not found")
			}
			return apperr.Internal("failed to find book request", err)
		}

		request.Status = status
		if err := tx.Save(&request).Error; err != nil {
			return apperr.Internal("failed to update book request", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Delete removes a book request
func (r *GormBookRequestRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.BookRequest{}, id)
	if result.Error != nil {
		return apperr.Internal("failed to delete book request", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("book request not found")
	}
	return nil
}
