package command

import (
	"time"

	"github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

// UpdateBookCommand represents the command to update a catalog book.
// Nil pointer fields are left unchanged.
type UpdateBookCommand struct {
	ID          string
	Title       *string
	Description *string
	GenreID     *uint
	AuthorID    *uint
	ReleaseDate *time.Time
	Price       *float64
	Img         *string
}

// UpdateBookHandler handles book updates
type UpdateBookHandler struct {
	books   domain.BookRepository
	authors domain.AuthorRepository
	genres  domain.GenreRepository
}

// NewUpdateBookHandler creates a new update book handler
func NewUpdateBookHandler(books domain.BookRepository, authors domain.AuthorRepository, genres domain.GenreRepository) *UpdateBookHandler {
	return &UpdateBookHandler{books: books, authors: authors, genres: genres}
}

// Handle executes the update book command
func (h *UpdateBookHandler) Handle(cmd UpdateBookCommand) (*domain.Book, error) {
	book, err := h.books.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if *cmd.Title == "" {
			return nil, apperr.BadRequest("title cannot be empty")
		}
		book.Title = *cmd.Title
	}
	if cmd.Description != nil {
		book.Description = *cmd.Description
	}
	if cmd.AuthorID != nil {
		if _, err := h.authors.FindByID(*cmd.AuthorID); err != nil {
			return nil, err
		}
		book.AuthorID = *cmd.AuthorID
	}
	if cmd.GenreID != nil {
		if _, err := h.genres.FindByID(*cmd.GenreID); err != nil {
			return nil, err
		}
		book.GenreID = cmd.GenreID
	}
	if cmd.ReleaseDate != nil {
		book.ReleaseDate = cmd.ReleaseDate
	}
	if cmd.Price != nil {
		if *cmd.Price < 0 {
			return nil, apperr.BadRequest("price cannot be negative")
		}
		book.Price = *cmd.Price
	}
	if cmd.Img != nil {
		book.Img = *cmd.Img
	}

	// Preloaded associations would be written back by Save
	book.Author = nil
	book.Genre = nil

	if err := h.books.Update(book); err != nil {
		return nil, err
	}
	return book, nil
}
