package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/bookstore-backend/internal/requests/domain"
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
		&domain.BookRequest{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, nickname string) uint {
	u := user.User{Nickname: nickname, Email: nickname + "@example.com", Password: "x", Role: user.RoleUser}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func seedRequest(t *testing.T, repo *GormBookRequestRepository, userID uint, title string) *domain.BookRequest {
	request := &domain.BookRequest{
		Title:       title,
		AuthorName:  "Author of " + title,
		RequestedBy: userID,
		Status:      domain.StatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), request))
	return request
}

func TestCreateStartsPending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRequestRepository(db)

	alice := seedUser(t, db, "alice")
	request := seedRequest(t, repo, alice, "Dune Messiah")

	assert.NotZero(t, request.ID)
	assert.Equal(t, domain.StatusPending, request.Status)
	assert.Equal(t, alice, request.RequestedBy)
}

func TestListScopedByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRequestRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedRequest(t, repo, alice, "Dune Messiah")
	seedRequest(t, repo, alice, "Hyperion")
	seedRequest(t, repo, bob, "Solaris")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.FindByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, request := range mine {
		assert.Equal(t, alice, request.RequestedBy)
	}
}

func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRequestRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	request := seedRequest(t, repo, alice, "Dune Messiah")

	updated, err := repo.UpdateStatus(ctx, request.ID, domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)

	var stored domain.BookRequest
	require.NoError(t, db.First(&stored, request.ID).Error)
	assert.Equal(t, domain.StatusApproved, stored.Status)
}

func TestUpdateStatusMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRequestRepository(db)

	_, err := repo.UpdateStatus(context.Background(), 42, domain.StatusRejected)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRequestRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	request := seedRequest(t, repo, alice, "Dune Messiah")

	require.NoError(t, repo.Delete(ctx, request.ID))

	err := repo.Delete(ctx, request.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	remaining, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
