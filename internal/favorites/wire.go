//go:build wireinject
// +build wireinject

package favorites

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogdomain "github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/internal/favorites/delivery/http"
	"github.com/tair/bookstore-backend/pkg/cache"
)

// InitializeHTTPHandler initializes the favorites HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, catalogCache *cache.ResponseCache) (*http.FavoritesHandler, error) {
	wire.Build(RepositorySet, HandlerSet, http.NewFavoritesHandler)
	return nil, nil
}

// InitializeFavoriteChecker initializes the checker consumed by the
// catalog and basket domains
func InitializeFavoriteChecker(db *gorm.DB) (catalogdomain.FavoriteChecker, error) {
	wire.Build(CheckerSet)
	return nil, nil
}
