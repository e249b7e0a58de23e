package query

import (
	"context"

	"github.com/tair/bookstore-backend/internal/catalog/domain"
)

// BookResponse is the shop-facing book representation with joined
// author/genre names and the caller's favorite annotation.
type BookResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	GenreName      string  `json:"genre_name,omitempty"`
	AuthorName     string  `json:"author_name"`
	ReleaseDate    string  `json:"release_date,omitempty"`
	Price          float64 `json:"price"`
	FavoritesCount int     `json:"favorites_count"`
	IsFavorite     bool    `json:"is_favorite"`
	Img            string  `json:"img,omitempty"`
}

// NewBookResponse builds a BookResponse from a loaded book
func NewBookResponse(book *domain.Book, isFavorite bool) BookResponse {
	resp := BookResponse{
		ID:             book.ID,
		Title:          book.Title,
		Description:    book.Description,
		Price:          book.Price,
		FavoritesCount: book.FavoritesCount,
		IsFavorite:     isFavorite,
		Img:            book.Img,
	}
	if book.Author != nil {
		resp.AuthorName = book.Author.Name
	}
	if book.Genre != nil {
		resp.GenreName = book.Genre.Name
	}
	if book.ReleaseDate != nil {
		resp.ReleaseDate = book.ReleaseDate.Format("2006-01-02")
	}
	return resp
}

// ListBooksQuery represents the shop listing query. UserID 0 means an
// anonymous caller; is_favorite is then false everywhere.
type ListBooksQuery struct {
	Filter domain.BookFilter
	UserID uint
}

// ListBooksHandler handles shop book listings
type ListBooksHandler struct {
	books     domain.BookRepository
	favorites domain.FavoriteChecker
}

// NewListBooksHandler creates a new list books handler
func NewListBooksHandler(books domain.BookRepository, favorites domain.FavoriteChecker) *ListBooksHandler {
	return &ListBooksHandler{books: books, favorites: favorites}
}

// Handle executes the list books query
func (h *ListBooksHandler) Handle(ctx context.Context, q ListBooksQuery) ([]BookResponse, error) {
	books, err := h.books.FindAll(q.Filter)
	if err != nil {
		return nil, err
	}

	favorite := map[string]bool{}
	if q.UserID != 0 {
		ids, err := h.favorites.FavoriteBookIDs(ctx, q.UserID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			favorite[id] = true
		}
	}

	responses := make([]BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, NewBookResponse(&books[i], favorite[books[i].ID]))
	}
	return responses, nil
}
