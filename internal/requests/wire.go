//go:build wireinject
// +build wireinject

package requests

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/requests/delivery/http"
)

// InitializeHTTPHandler initializes the book requests HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.RequestsHandler, error) {
	wire.Build(RepositorySet, HandlerSet, http.NewRequestsHandler)
	return nil, nil
}
