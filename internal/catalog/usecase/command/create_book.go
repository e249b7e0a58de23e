package command

import (
	"time"

	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// CreateBookCommand represents the command to add a book to the catalog
type CreateBookCommand struct {
	ID          string
	Title       string
	Description string
	GenreID     *uint
	AuthorID    uint
	ReleaseDate *time.Time
	Price       float64
	Img         string
}

// CreateBookHandler handles book creation
type CreateBookHandler struct {
	books   domain.BookRepository
	authors domain.AuthorRepository
	genres  domain.GenreRepository
}

// NewCreateBookHandler creates a new create book handler
func NewCreateBookHandler(books domain.BookRepository, authors domain.AuthorRepository, genres domain.GenreRepository) *CreateBookHandler {
	return &CreateBookHandler{books: books, authors: authors, genres: genres}
}

// Handle executes the create book command
func (h *CreateBookHandler) Handle(cmd CreateBookCommand) (*domain.Book, error) {
	if cmd.ID == "" {
		return nil, apperr.BadRequest("book id is required")
	}
	if cmd.Title == "" {
		return nil, apperr.BadRequest("title is required")
	}
	if cmd.AuthorID == 0 {
		return nil, apperr.BadRequest("author_id is required")
	}
	if cmd.Price < 0 {
		return nil, apperr.BadRequest("price cannot be negative")
	}

	if _, err := h.authors.FindByID(cmd.AuthorID); err != nil {
		return nil, err
	}
	if cmd.GenreID != nil {
		if _, err := h.genres.FindByID(*cmd.GenreID); err != nil {
			return nil, err
		}
	}

	book := &domain.Book{
		ID:          cmd.ID,
		Title:       cmd.Title,
		Description: cmd.Description,
		GenreID:     cmd.GenreID,
		AuthorID:    cmd.AuthorID,
		ReleaseDate: cmd.ReleaseDate,
		Price:       cmd.Price,
		Img:         cmd.Img,
	}

	if err := h.books.Create(book); err != nil {
		return nil, err
	}
	return book, nil
}
