//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/catalog/delivery/http"
	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/cache"
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all
// dependencies. The favorites checker comes from the favorites domain.
func InitializeHTTPHandler(db *gorm.DB, favorites domain.FavoriteChecker, catalogCache *cache.ResponseCache) (*http.CatalogHandler, error) {
	wire.Build(AllSet)
	return nil, nil
}
