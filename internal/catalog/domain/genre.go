package domain

import "time"

// Genre represents a book genre
type Genre struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	Img       string    `json:"img"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Books []Book `json:"books,omitempty" gorm:"foreignKey:GenreID"`
}

// TableName specifies the table name
func (Genre) TableName() string {
	return "genres"
}

// GenreRepository defines the contract for genre data access
type GenreRepository interface {
	Create(genre *Genre) error
	FindByID(id uint) (*Genre, error)
	FindAll() ([]Genre, error)
	Update(genre *Genre) error
	Delete(id uint) error
}
