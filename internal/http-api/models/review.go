package models

import "time"

// Review is a user's rating of a book with optional free text. UserID is kept
// as a plain value without a foreign key: reviews are accepted from callers
// that are not registered members.
type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	BookID    int64     `json:"book_id" gorm:"not null;index"`
	UserID    int64     `json:"user_id" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Review    string    `json:"review,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"timestamp" gorm:"autoCreateTime"`

	// Association
	Book *Book `json:"book,omitempty" gorm:"foreignKey:BookID"`
}

func (Review) TableName() string {
	return "reviews"
}
