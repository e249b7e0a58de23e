//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/user/delivery/http"
	"github.com/tair/bookstore-backend/pkg/auth"
)

// InitializeHTTPHandler initializes the user HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, tokens *auth.JWTManager) (*http.UserHandler, error) {
	wire.Build(RepositorySet, HandlerSet, http.NewUserHandler)
	return nil, nil
}

// InitializeMiddleware initializes the identity middleware
func InitializeMiddleware(db *gorm.DB, tokens *auth.JWTManager) (*http.Middleware, error) {
	wire.Build(RepositorySet, http.NewMiddleware)
	return nil, nil
}
