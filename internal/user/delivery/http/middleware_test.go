package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/bookstore-backend/internal/user/domain"
	"github.com/tair/bookstore-backend/internal/user/repository"
	"github.com/tair/bookstore-backend/pkg/auth"
)

func setupMiddleware(t *testing.T) (*Middleware, *gorm.DB, *auth.JWTManager) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	tokens := auth.NewJWTManager(auth.Config{Secret: "test-secret"})
	return NewMiddleware(repository.NewGormUserRepository(db), tokens), db, tokens
}

func createUser(t *testing.T, db *gorm.DB, nickname, role string) *domain.User {
	u := &domain.User{Nickname: nickname, Email: nickname + "@example.com", Password: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequiredRejections(t *testing.T) {
	mw, db, tokens := setupMiddleware(t)
	alice := createUser(t, db, "alice", domain.RoleUser)

	goodToken, err := tokens.Generate(alice.ID, alice.Email, alice.Role)
	require.NoError(t, err)

	ghostToken, err := tokens.Generate(9999, "ghost@example.com", domain.RoleUser)
	require.NoError(t, err)

	otherManager := auth.NewJWTManager(auth.Config{Secret: "another-secret"})
	forgedToken, err := otherManager.Generate(alice.ID, alice.Email, alice.Role)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "malformed bearer", header: "Bearer"},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "wrong signing key", header: "Bearer " + forgedToken},
		{name: "valid token for deleted user", header: "Bearer " + ghostToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			mw.Required(okHandler)(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			// Every failure yields the same body so callers cannot
			// probe which step failed
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "invalid credentials", body["error"])
		})
	}

	t.Run("valid token passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+goodToken)
		w := httptest.NewRecorder()

		mw.Required(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, alice.ID, user.ID)
			w.WriteHeader(http.StatusOK)
		})(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOptionalContinuesAnonymously(t *testing.T) {
	mw, db, tokens := setupMiddleware(t)
	alice := createUser(t, db, "alice", domain.RoleUser)

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/shop", nil)
		w := httptest.NewRecorder()

		mw.Optional(func(w http.ResponseWriter, r *http.Request) {
			_, ok := UserFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/shop", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		mw.Optional(func(w http.ResponseWriter, r *http.Request) {
			_, ok := UserFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := tokens.Generate(alice.ID, alice.Email, alice.Role)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/shop", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		mw.Optional(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, alice.ID, user.ID)
			w.WriteHeader(http.StatusOK)
		})(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	mw, db, tokens := setupMiddleware(t)
	alice := createUser(t, db, "alice", domain.RoleUser)
	root := createUser(t, db, "root", domain.RoleAdmin)

	t.Run("regular user forbidden", func(t *testing.T) {
		token, err := tokens.Generate(alice.ID, alice.Email, alice.Role)
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/admin/books", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		mw.AdminOnly(okHandler)(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/admin/books", nil)
		w := httptest.NewRecorder()

		mw.AdminOnly(okHandler)(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := tokens.Generate(root.ID, root.Email, root.Role)
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/admin/books", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		mw.AdminOnly(okHandler)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
