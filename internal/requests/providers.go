package requests

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/requests/domain"
	"github.com/tair/bookstore-backend/internal/requests/repository"
	"github.com/tair/bookstore-backend/internal/requests/usecase/command"
	"github.com/tair/bookstore-backend/internal/requests/usecase/query"
)

// ProvideBookRequestRepository provides the book request repository
func ProvideBookRequestRepository(db *gorm.DB) domain.BookRequestRepository {
	return repository.NewGormBookRequestRepository(db)
}

// Command Handlers Providers
func ProvideCreateRequestHandler(repo domain.BookRequestRepository) *command.CreateRequestHandler {
	return command.NewCreateRequestHandler(repo)
}

func ProvideUpdateRequestStatusHandler(repo domain.BookRequestRepository) *command.UpdateRequestStatusHandler {
	return command.NewUpdateRequestStatusHandler(repo)
}

func ProvideDeleteRequestHandler(repo domain.BookRequestRepository) *command.DeleteRequestHandler {
	return command.NewDeleteRequestHandler(repo)
}

// Query Handlers Providers
func ProvideListRequestsHandler(repo domain.BookRequestRepository) *query.ListRequestsHandler {
	return query.NewListRequestsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideBookRequestRepository,
)

var HandlerSet = wire.NewSet(
	ProvideCreateRequestHandler,
	ProvideUpdateRequestStatusHandler,
	ProvideDeleteRequestHandler,
	ProvideListRequestsHandler,
)
