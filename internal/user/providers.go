package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/user/domain"
	"github.com/tair/bookstore-backend/internal/user/repository"
	"github.com/tair/bookstore-backend/internal/user/usecase/command"
	"github.com/tair/bookstore-backend/internal/user/usecase/query"
	"github.com/tair/bookstore-backend/pkg/auth"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// Command Handlers Providers
func ProvideRegisterUserHandler(repo domain.UserRepository) *command.RegisterUserHandler {
	return command.NewRegisterUserHandler(repo)
}

func ProvideLoginUserHandler(repo domain.UserRepository, tokens *auth.JWTManager) *command.LoginUserHandler {
	return command.NewLoginUserHandler(repo, tokens)
}

// Query Handlers Providers
func ProvideGetUserHandler(repo domain.UserRepository) *query.GetUserHandler {
	return query.NewGetUserHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var HandlerSet = wire.NewSet(
	ProvideRegisterUserHandler,
	ProvideLoginUserHandler,
	ProvideGetUserHandler,
)
