package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/bookstore-backend/internal/basket/domain"
	"github.com/tair/bookstore-backend/internal/basket/repository"
	catalog "github.com/tair/bookstore-backend/internal/catalog/domain"
	favoritesdomain "github.com/tair/bookstore-backend/internal/favorites/domain"
	favoritesrepo "github.com/tair/bookstore-backend/internal/favorites/repository"
	user "github.com/tair/bookstore-backend/internal/user/domain"
	"github.com/tair/bookstore-backend/kafka"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

type capturingPublisher struct {
	events []kafka.OrderPurchasedEvent
	err    error
}

func (p *capturingPublisher) PublishOrderPurchased(_ context.Context, event kafka.OrderPurchasedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&catalog.Author{},
		&catalog.Genre{},
		&catalog.Book{},
		&favoritesdomain.Favorite{},
		&domain.BasketItem{},
	))
	return db
}

func seedBook(t *testing.T, db *gorm.DB, id string, price float64) {
	author := catalog.Author{Name: "Author of " + id}
	require.NoError(t, db.Create(&author).Error)
	book := catalog.Book{ID: id, Title: "Title of " + id, AuthorID: author.ID, Price: price}
	require.NoError(t, db.Create(&book).Error)
}

func seedUser(t *testing.T, db *gorm.DB, nickname string) uint {
	u := user.User{Nickname: nickname, Email: nickname + "@example.com", Password: "x", Role: user.RoleUser}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func TestPurchasePublishesEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewGormBasketRepository(db)
	publisher := &capturingPublisher{}
	handler := NewPurchaseHandler(repo, publisher)
	ctx := context.Background()

	seedBook(t, db, "dune", 10.00)
	seedBook(t, db, "hyperion", 5.50)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 2)
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, alice, "hyperion", 1)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, PurchaseCommand{UserID: alice})
	require.NoError(t, err)
	require.NotEmpty(t, result.OrderID)
	assert.Len(t, result.Items, 2)
	assert.InDelta(t, 25.50, result.Total, 0.001)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, result.OrderID, event.OrderID)
	assert.Equal(t, alice, event.UserID)
	assert.Len(t, event.Items, 2)
	assert.InDelta(t, 25.50, event.Total, 0.001)
}

func TestPurchaseSucceedsWhenPublishFails(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewGormBasketRepository(db)
	publisher := &capturingPublisher{err: errors.New("broker down")}
	handler := NewPurchaseHandler(repo, publisher)
	ctx := context.Background()

	seedBook(t, db, "dune", 10.00)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 1)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, PurchaseCommand{UserID: alice})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestPurchaseWithoutPublisher(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewGormBasketRepository(db)
	handler := NewPurchaseHandler(repo, nil)
	ctx := context.Background()

	seedBook(t, db, "dune", 10.00)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 1)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, PurchaseCommand{UserID: alice})
	require.NoError(t, err)
}

func TestPurchaseEmptyBasket(t *testing.T) {
	db := setupTestDB(t)
	handler := NewPurchaseHandler(repository.NewGormBasketRepository(db), nil)

	alice := seedUser(t, db, "alice")

	_, err := handler.Handle(context.Background(), PurchaseCommand{UserID: alice})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestAddItemQuantityValidation(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewGormBasketRepository(db)
	handler := NewAddItemHandler(repo)
	ctx := context.Background()

	seedBook(t, db, "dune", 10.00)
	alice := seedUser(t, db, "alice")

	t.Run("zero defaults to one", func(t *testing.T) {
		item, err := handler.Handle(ctx, AddItemCommand{UserID: alice, BookID: "dune"})
		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := handler.Handle(ctx, AddItemCommand{UserID: alice, BookID: "dune", Quantity: -1})
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})

	t.Run("missing book id rejected", func(t *testing.T) {
		_, err := handler.Handle(ctx, AddItemCommand{UserID: alice})
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})
}

// Exercises the favorites ledger and basket lifecycle together the way
// a session does: favorite a book, buy it, and check the favorite
// survives the purchase.
func TestPurchaseLeavesFavoritesIntact(t *testing.T) {
	db := setupTestDB(t)
	basketRepo := repository.NewGormBasketRepository(db)
	favRepo := favoritesrepo.NewGormFavoritesRepository(db)
	handler := NewPurchaseHandler(basketRepo, nil)
	ctx := context.Background()

	seedBook(t, db, "dune", 10.00)
	alice := seedUser(t, db, "alice")

	require.NoError(t, favRepo.Add(ctx, alice, "dune"))

	_, err := basketRepo.AddItem(ctx, alice, "dune", 3)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, PurchaseCommand{UserID: alice})
	require.NoError(t, err)
	assert.InDelta(t, 30.00, result.Total, 0.001)

	active, err := basketRepo.ActiveItems(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, active)

	ok, err := favRepo.IsFavorite(ctx, alice, "dune")
	require.NoError(t, err)
	assert.True(t, ok)

	var book catalog.Book
	require.NoError(t, db.First(&book, "id = ?", "dune").Error)
	assert.Equal(t, 1, book.FavoritesCount)
}
