package domain

import (
	"context"
	"time"

	user "github.com/tair/bookstore-backend/internal/user/domain"
)

// Book request lifecycle states
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// BookRequest is a user's ask for a title the catalog does not carry
// yet. New requests start pending; admins move them to approved or
// rejected, and the row stays until an admin deletes it.
type BookRequest struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	AuthorName  string    `json:"author_name"`
	RequestedBy uint      `json:"requested_by" gorm:"not null;index"`
	Status      string    `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User *user.User `json:"-" gorm:"foreignKey:RequestedBy;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (BookRequest) TableName() string {
	return "book_requests"
}

// ValidStatus reports whether s is one of the lifecycle states
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// BookRequestRepository defines the contract for book request data access
type BookRequestRepository interface {
	Create(ctx context.Context, request *BookRequest) error
	FindAll(ctx context.Context) ([]BookRequest, error)
	FindByUser(ctx context.Context, userID uint) ([]BookRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*BookRequest, error)
	Delete(ctx context.Context, id uint) error
}
