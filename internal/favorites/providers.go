package favorites

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogdomain "github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/internal/favorites/domain"
	"github.com/tair/bookstore-backend/internal/favorites/repository"
	"github.com/tair/bookstore-backend/internal/favorites/usecase/command"
	"github.com/tair/bookstore-backend/internal/favorites/usecase/query"
)

// ProvideFavoritesRepository provides the favorites repository wrapped
// with tracing
func ProvideFavoritesRepository(db *gorm.DB) domain.FavoritesRepository {
	return repository.NewGormFavoritesRepositoryWithTracing(db)
}

// ProvideFavoriteChecker exposes the favorites repository to the catalog
// and basket domains for is_favorite annotations
func ProvideFavoriteChecker(repo domain.FavoritesRepository) catalogdomain.FavoriteChecker {
	return repo
}

// Command Handlers Providers
func ProvideAddFavoriteHandler(repo domain.FavoritesRepository) *command.AddFavoriteHandler {
	return command.NewAddFavoriteHandler(repo)
}

func ProvideRemoveFavoriteHandler(repo domain.FavoritesRepository) *command.RemoveFavoriteHandler {
	return command.NewRemoveFavoriteHandler(repo)
}

// Query Handlers Providers
func ProvideListFavoritesHandler(repo domain.FavoritesRepository) *query.ListFavoritesHandler {
	return query.NewListFavoritesHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideFavoritesRepository,
)

var CheckerSet = wire.NewSet(
	RepositorySet,
	ProvideFavoriteChecker,
)

var HandlerSet = wire.NewSet(
	ProvideAddFavoriteHandler,
	ProvideRemoveFavoriteHandler,
	ProvideListFavoritesHandler,
)
