package domain

import "time"

// Author represents a book author
type Author struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	Info      string    `json:"info"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Books []Book `json:"books,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName specifies the table name
func (Author) TableName() string {
	return "authors"
}

// AuthorRepository defines the contract for author data access
type AuthorRepository interface {
	Create(author *Author) error
	FindByID(id uint) (*Author, error)
	FindAll(limit, offset int) ([]Author, error)
	Update(author *Author) error
	Delete(id uint) error
}
