package basket

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/basket/delivery/http"
	"github.com/tair/bookstore-backend/internal/basket/domain"
	"github.com/tair/bookstore-backend/internal/basket/repository"
	"github.com/tair/bookstore-backend/internal/basket/usecase/command"
	"github.com/tair/bookstore-backend/internal/basket/usecase/query"
	catalogdomain "github.com/tair/bookstore-backend/internal/catalog/domain"
)

// ProvideBasketRepository provides the basket repository wrapped with
// tracing
func ProvideBasketRepository(db *gorm.DB) domain.BasketRepository {
	return repository.NewGormBasketRepositoryWithTracing(db)
}

// Command Handlers Providers
func ProvideAddItemHandler(repo domain.BasketRepository) *command.AddItemHandler {
	return command.NewAddItemHandler(repo)
}

func ProvideRemoveItemHandler(repo domain.BasketRepository) *command.RemoveItemHandler {
	return command.NewRemoveItemHandler(repo)
}

func ProvidePurchaseHandler(repo domain.BasketRepository, publisher command.EventPublisher) *command.PurchaseHandler {
	return command.NewPurchaseHandler(repo, publisher)
}

// Query Handlers Providers
func ProvideGetBasketHandler(repo domain.BasketRepository, favorites catalogdomain.FavoriteChecker) *query.GetBasketHandler {
	return query.NewGetBasketHandler(repo, favorites)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideBasketRepository,
)

var HandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideRemoveItemHandler,
	ProvidePurchaseHandler,
	ProvideGetBasketHandler,
)

var AllSet = wire.NewSet(
	RepositorySet,
	HandlerSet,
	http.NewBasketHandler,
)
