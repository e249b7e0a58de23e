package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/bookstore-backend/internal/catalog/delivery/http"
	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/internal/catalog/repository"
)

// ProvideBookRepository provides the book repository
func ProvideBookRepository(db *gorm.DB) domain.BookRepository {
	return repository.NewGormBookRepository(db)
}

// ProvideAuthorRepository provides the author repository
func ProvideAuthorRepository(db *gorm.DB) domain.AuthorRepository {
	return repository.NewGormAuthorRepository(db)
}

// ProvideGenreRepository provides the genre repository
func ProvideGenreRepository(db *gorm.DB) domain.GenreRepository {
	return repository.NewGormGenreRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideBookRepository,
	ProvideAuthorRepository,
	ProvideGenreRepository,
)

var AllSet = wire.NewSet(
	RepositorySet,
	http.NewCatalogHandler,
)
