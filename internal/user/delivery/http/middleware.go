package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tair/bookstore-backend/internal/user/domain"
	"github.com/tair/bookstore-backend/pkg/auth"
)

type contextKey string

const userKey contextKey = "current_user"

// Middleware resolves the authenticated user for a request. Token
// validation and the user lookup are combined so a valid token whose
// subject no longer exists is indistinguishable from a bad token.
type Middleware struct {
	users  domain.UserRepository
	tokens *auth.JWTManager
}

// NewMiddleware creates the auth middleware
func NewMiddleware(users domain.UserRepository, tokens *auth.JWTManager) *Middleware {
	return &Middleware{users: users, tokens: tokens}
}

// resolve extracts and verifies the bearer token and loads the user.
// Every failure mode returns nil.
func (m *Middleware) resolve(r *http.Request) *domain.User {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil
	}

	claims, err := m.tokens.Validate(parts[1])
	if err != nil {
		return nil
	}

	user, err := m.users.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

// Required rejects the request with 401 unless a user resolves. The
// error body is the same for every failure cause.
func (m *Middleware) Required(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := m.resolve(r)
		if user == nil {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	}
}

// Optional attaches the user when the token resolves and continues
// anonymously otherwise.
func (m *Middleware) Optional(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if user := m.resolve(r); user != nil {
			r = r.WithContext(withUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	}
}

// AdminOnly requires an authenticated user with the admin role
func (m *Middleware) AdminOnly(next http.HandlerFunc) http.HandlerFunc {
	return m.Required(func(w http.ResponseWriter, r *http.Request) {
		user, _ := UserFromContext(r.Context())
		if user == nil || !user.IsAdmin() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the resolved user, if any
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
}
