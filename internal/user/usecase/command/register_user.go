package command

import (
	"strings"

	"github.com/tair/bookstore-backend/internal/user/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
	"github.com/tair/bookstore-backend/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Nickname string
	Email    string
	Password string
	Role     string // Optional, defaults to "user"
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Nickname == "" {
		return nil, apperr.BadRequest("nickname is required")
	}
	if cmd.Email == "" || !strings.Contains(cmd.Email, "@") {
		return nil, apperr.BadRequest("valid email is required")
	}
	if len(cmd.Password) < 6 {
		return nil, apperr.BadRequest("password must be at least 6 characters")
	}

	if existing, _ := h.repo.FindByNickname(cmd.Nickname); existing != nil {
		return nil, apperr.Conflict("nickname already exists")
	}
	if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	role := cmd.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, apperr.BadRequest("invalid role")
	}

	user := &domain.User{
		Nickname: cmd.Nickname,
		Email:    cmd.Email,
		Password: hashed,
		Role:     role,
	}

	if err := h.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
