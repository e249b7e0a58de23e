package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/bookstore-backend/internal/user/domain"
	"github.com/tair/bookstore-backend/internal/user/repository"
	"github.com/tair/bookstore-backend/pkg/apperr"
	"github.com/tair/bookstore-backend/pkg/auth"
)

func setupRepo(t *testing.T) domain.UserRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return repository.NewGormUserRepository(db)
}

func TestRegisterUser(t *testing.T) {
	repo := setupRepo(t)
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{
		Nickname: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "secret123"))
}

func TestRegisterUserValidation(t *testing.T) {
	handler := NewRegisterUserHandler(setupRepo(t))

	tests := []struct {
		name string
		cmd  RegisterUserCommand
		kind apperr.Kind
	}{
		{
			name: "missing nickname",
			cmd:  RegisterUserCommand{Email: "a@example.com", Password: "secret123"},
			kind: apperr.KindBadRequest,
		},
		{
			name: "invalid email",
			cmd:  RegisterUserCommand{Nickname: "alice", Email: "not-an-email", Password: "secret123"},
			kind: apperr.KindBadRequest,
		},
		{
			name: "short password",
			cmd:  RegisterUserCommand{Nickname: "alice", Email: "a@example.com", Password: "short"},
			kind: apperr.KindBadRequest,
		},
		{
			name: "unknown role",
			cmd:  RegisterUserCommand{Nickname: "alice", Email: "a@example.com", Password: "secret123", Role: "superuser"},
			kind: apperr.KindBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(tt.cmd)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
		})
	}
}

func TestRegisterUserDuplicates(t *testing.T) {
	handler := NewRegisterUserHandler(setupRepo(t))

	_, err := handler.Handle(RegisterUserCommand{Nickname: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = handler.Handle(RegisterUserCommand{Nickname: "alice", Email: "other@example.com", Password: "secret123"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	_, err = handler.Handle(RegisterUserCommand{Nickname: "bob", Email: "alice@example.com", Password: "secret123"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLoginUser(t *testing.T) {
	repo := setupRepo(t)
	register := NewRegisterUserHandler(repo)
	tokens := auth.NewJWTManager(auth.Config{Secret: "test-secret"})
	login := NewLoginUserHandler(repo, tokens)

	_, err := register.Handle(RegisterUserCommand{Nickname: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := login.Handle(LoginUserCommand{Nickname: "alice", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)

		claims, err := tokens.Validate(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, claims.UserID)
		assert.Equal(t, domain.RoleUser, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := login.Handle(LoginUserCommand{Nickname: "alice", Password: "wrong-pass"})
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
		assert.Equal(t, "invalid credentials", apperr.MessageOf(err))
	})

	t.Run("unknown nickname", func(t *testing.T) {
		_, err := login.Handle(LoginUserCommand{Nickname: "nobody", Password: "secret123"})
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
		// Same message as a wrong password, so nicknames cannot be
		// enumerated
		assert.Equal(t, "invalid credentials", apperr.MessageOf(err))
	})
}
