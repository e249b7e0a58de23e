package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/internal/catalog/repository"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

type catalogRepos struct {
	books   domain.BookRepository
	authors domain.AuthorRepository
	genres  domain.GenreRepository
}

func setupRepos(t *testing.T) (*gorm.DB, catalogRepos) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.Author{},
		&domain.Genre{},
		&domain.Book{},
	))

	return db, catalogRepos{
		books:   repository.NewGormBookRepository(db),
		authors: repository.NewGormAuthorRepository(db),
		genres:  repository.NewGormGenreRepository(db),
	}
}

func TestCreateBook(t *testing.T) {
	db, repos := setupRepos(t)
	handler := NewCreateBookHandler(repos.books, repos.authors, repos.genres)

	author := domain.Author{Name: "Frank Herbert"}
	require.NoError(t, db.Create(&author).Error)
	genre := domain.Genre{Name: "Science Fiction"}
	require.NoError(t, db.Create(&genre).Error)

	book, err := handler.Handle(CreateBookCommand{
		ID:       "dune",
		Title:    "Dune",
		AuthorID: author.ID,
		GenreID:  &genre.ID,
		Price:    19.99,
	})
	require.NoError(t, err)
	assert.Equal(t, "dune", book.ID)
	assert.Equal(t, 0, book.FavoritesCount)
}

func TestCreateBookMissingReferences(t *testing.T) {
	db, repos := setupRepos(t)
	handler := NewCreateBookHandler(repos.books, repos.authors, repos.genres)

	author := domain.Author{Name: "Frank Herbert"}
	require.NoError(t, db.Create(&author).Error)

	t.Run("unknown author", func(t *testing.T) {
		_, err := handler.Handle(CreateBookCommand{ID: "dune", Title: "Dune", AuthorID: 999})
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("unknown genre", func(t *testing.T) {
		missing := uint(999)
		_, err := handler.Handle(CreateBookCommand{ID: "dune", Title: "Dune", AuthorID: author.ID, GenreID: &missing})
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestCreateBookValidation(t *testing.T) {
	_, repos := setupRepos(t)
	handler := NewCreateBookHandler(repos.books, repos.authors, repos.genres)

	tests := []struct {
		name string
		cmd  CreateBookCommand
	}{
		{name: "missing id", cmd: CreateBookCommand{Title: "Dune", AuthorID: 1}},
		{name: "missing title", cmd: CreateBookCommand{ID: "dune", AuthorID: 1}},
		{name: "missing author", cmd: CreateBookCommand{ID: "dune", Title: "Dune"}},
		{name: "negative price", cmd: CreateBookCommand{ID: "dune", Title: "Dune", AuthorID: 1, Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(tt.cmd)
			assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
		})
	}
}

func TestUpdateBookPartial(t *testing.T) {
	db, repos := setupRepos(t)
	create := NewCreateBookHandler(repos.books, repos.authors, repos.genres)
	update := NewUpdateBookHandler(repos.books, repos.authors, repos.genres)

	author := domain.Author{Name: "Frank Herbert"}
	require.NoError(t, db.Create(&author).Error)

	_, err := create.Handle(CreateBookCommand{ID: "dune", Title: "Dune", AuthorID: author.ID, Price: 19.99})
	require.NoError(t, err)

	newPrice := 14.99
	book, err := update.Handle(UpdateBookCommand{ID: "dune", Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 14.99, book.Price)
	// Untouched fields keep their values
	assert.Equal(t, "Dune", book.Title)
}

func TestUpdateBookMissing(t *testing.T) {
	_, repos := setupRepos(t)
	update := NewUpdateBookHandler(repos.books, repos.authors, repos.genres)

	title := "Anything"
	_, err := update.Handle(UpdateBookCommand{ID: "no-such-book", Title: &title})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
