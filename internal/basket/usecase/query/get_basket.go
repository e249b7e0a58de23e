package query

import (
	"context"

	"github.com/tair/bookstore-backend/internal/basket/domain"
	catalog "github.com/tair/bookstore-backend/internal/catalog/domain"
	catalogquery "github.com/tair/bookstore-backend/internal/catalog/usecase/query"
)

// BasketItemResponse is one active basket line with its book joined
type BasketItemResponse struct {
	catalogquery.BookResponse
	Quantity int `json:"quantity"`
}

// GetBasketQuery represents the query to fetch the active basket
type GetBasketQuery struct {
	UserID uint
}

// GetBasketHandler handles the get basket query
type GetBasketHandler struct {
	repo      domain.BasketRepository
	favorites catalog.FavoriteChecker
}

// NewGetBasketHandler creates a new get basket handler
func NewGetBasketHandler(repo domain.BasketRepository, favorites catalog.FavoriteChecker) *GetBasketHandler {
	return &GetBasketHandler{repo: repo, favorites: favorites}
}

// Handle executes the get basket query. Only active rows are
// returned; is_favorite is computed per item from the ledger.
func (h *GetBasketHandler) Handle(ctx context.Context, q GetBasketQuery) ([]BasketItemResponse, error) {
	items, err := h.repo.ActiveItems(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	favorite := map[string]bool{}
	if len(items) > 0 {
		ids, err := h.favorites.FavoriteBookIDs(ctx, q.UserID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			favorite[id] = true
		}
	}

	responses := make([]BasketItemResponse, 0, len(items))
	for _, item := range items {
		if item.Book == nil {
			continue
		}
		responses = append(responses, BasketItemResponse{
			BookResponse: catalogquery.NewBookResponse(item.Book, favorite[item.BookID]),
			Quantity:     item.Quantity,
		})
	}
	return responses, nil
}
