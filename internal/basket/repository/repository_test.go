package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/bookstore-backend/internal/basket/domain"
	catalog "github.com/tair/bookstore-backend/internal/catalog/domain"
	user "github.com/tair/bookstore-backend/internal/user/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
)

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

func itemStatus(t *testing.T, db *gorm.DB, userID uint, bookID string) string {
	var item domain.BasketItem
	require.NoError(t, db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&item).Error)
	return item.Status
}

func TestAddItemCreatesActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)
	ctx := context.Background()

	seedBook(t, db, "dune", 9.99)
	alice := seedUser(t, db, "alice")

	item, err := repo.AddItem(ctx, alice, "dune", 2)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, item.Status)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddItemMissingBook(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)

	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(context.Background(), alice, "no-such-book", 1)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAddItemActiveConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)
	ctx := context.Background()

	seedBook(t, db, "dune", 9.99)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 1)
	require.NoError(t, err)

	_, err = repo.AddItem(ctx, alice, "dune", 1)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Exactly one row per pair regardless of retries
	var count int64
	require.NoError(t, db.Model(&domain.BasketItem{}).Where("user_id = ?", alice).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItemReactivatesRemoved(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)
	ctx := context.Background()

	seedBook(t, db, "dune", 9.99)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 5)
	require.NoError(t, err)
	require.NoError(t, repo.SoftRemove(ctx, alice, "dune"))

	item, err := repo.AddItem(ctx, alice, "dune", 2)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, item.Status)
	// Reactivation takes the new quantity, not the stale one
	assert.Equal(t, 2, item.Quantity)
}

func TestAddItemReactivatesPurchased(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)
	ctx := context.Background()

	seedBook(t, db, "dune", 9.99)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 1)
	require.NoError(t, err)
	_, err = repo.Purchase(ctx, alice)
	require.NoError(t, err)

	item, err := repo.AddItem(ctx, alice, "dune", 3)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, item.Status)
	assert.Equal(t, 3, item.Quantity)
}

func TestSoftRemove(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)
	ctx := context.Background()

	seedBook(t, db, "dune", 9.99)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 1)
	require.NoError(t, err)

	require.NoError(t, repo.SoftRemove(ctx, alice, "dune"))
	assert.Equal(t, domain.StatusRemoved, itemStatus(t, db, alice, "dune"))

	// Removing again is not found: the row is no longer active
	err = repo.SoftRemove(ctx, alice, "dune")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSoftRemoveAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)

	alice := seedUser(t, db, "alice")

	err := repo.SoftRemove(context.Background(), alice, "dune")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestHardRemoveDeletesActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)
	ctx := context.Background()

	seedBook(t, db, "dune", 9.99)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 1)
	require.NoError(t, err)

	require.NoError(t, repo.HardRemove(ctx, alice, "dune"))

	var count int64
	require.NoError(t, db.Model(&domain.BasketItem{}).Where("user_id = ?", alice).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestHardRemoveSkipsSoftRemoved(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)
	ctx := context.Background()

	seedBook(t, db, "dune", 9.99)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 1)
	require.NoError(t, err)
	require.NoError(t, repo.SoftRemove(ctx, alice, "dune"))

	err = repo.HardRemove(ctx, alice, "dune")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// The soft-removed row survives for later reactivation
	assert.Equal(t, domain.StatusRemoved, itemStatus(t, db, alice, "dune"))
}

func TestPurchaseMovesAllActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)
	ctx := context.Background()

	seedBook(t, db, "dune", 9.99)
	seedBook(t, db, "hyperion", 12.50)
	seedBook(t, db, "solaris", 7.00)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 1)
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, alice, "hyperion", 2)
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, alice, "solaris", 1)
	require.NoError(t, err)
	require.NoError(t, repo.SoftRemove(ctx, alice, "solaris"))

	items, err := repo.Purchase(ctx, alice)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, domain.StatusPurchased, item.Status)
		assert.NotNil(t, item.Book)
	}

	// The soft-removed item stays removed
	assert.Equal(t, domain.StatusRemoved, itemStatus(t, db, alice, "solaris"))

	active, err := repo.ActiveItems(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestPurchaseEmptyBasket(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)

	alice := seedUser(t, db, "alice")

	_, err := repo.Purchase(context.Background(), alice)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestPurchaseOnlyOwnItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)
	ctx := context.Background()

	seedBook(t, db, "dune", 9.99)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := repo.AddItem(ctx, alice, "dune", 1)
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, bob, "dune", 1)
	require.NoError(t, err)

	_, err = repo.Purchase(ctx, alice)
	require.NoError(t, err)

	// Bob's basket is untouched
	assert.Equal(t, domain.StatusActive, itemStatus(t, db, bob, "dune"))
}

func TestActiveItemsLoadsBooks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBasketRepository(db)
	ctx := context.Background()

	seedBook(t, db, "dune", 9.99)
	alice := seedUser(t, db, "alice")

	_, err := repo.AddItem(ctx, alice, "dune", 2)
	require.NoError(t, err)

	items, err := repo.ActiveItems(ctx, alice)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	require.NotNil(t, items[0].Book)
	assert.Equal(t, "Title of dune", items[0].Book.Title)
	require.NotNil(t, items[0].Book.Author)
}
