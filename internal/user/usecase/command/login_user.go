package command

import (
	"github.com/tair/bookstore-backend/internal/user/domain"
	"github.com/tair/bookstore-backend/pkg/apperr"
	"github.com/tair/bookstore-backend/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Nickname string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo   domain.UserRepository
	tokens *auth.JWTManager
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository, tokens *auth.JWTManager) *LoginUserHandler {
	return &LoginUserHandler{repo: repo, tokens: tokens}
}

// Handle executes the login user command. Unknown nickname and wrong
// password produce the same error.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Nickname == "" || cmd.Password == "" {
		return nil, apperr.BadRequest("nickname and password are required")
	}

	user, err := h.repo.FindByNickname(cmd.Nickname)
	if err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := h.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperr.Internal("failed to generate token", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}
