//go:build wireinject
// +build wireinject

package basket

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/basket/delivery/http"
	"github.com/tair/bookstore-backend/internal/basket/usecase/command"
	catalogdomain "github.com/tair/bookstore-backend/internal/catalog/domain"
)

// InitializeHTTPHandler initializes the basket HTTP handler with all
// dependencies. The publisher may be nil when Kafka is disabled.
func InitializeHTTPHandler(db *gorm.DB, publisher command.EventPublisher, favorites catalogdomain.FavoriteChecker) (*http.BasketHandler, error) {
	wire.Build(AllSet)
	return nil, nil
}
