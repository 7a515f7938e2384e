package models

import "time"

// Borrowing is one loan of one book copy by one user. ReturnDate is nil while
// the loan is active. The partial unique index keeps at most one active
// borrowing per (user, book) pair even under concurrent inserts.
type Borrowing struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int64      `json:"user_id" gorm:"not null;index;uniqueIndex:uniq_active_borrowing,where:return_date IS NULL"`
	BookID     int64      `json:"book_id" gorm:"not null;index;uniqueIndex:uniq_active_borrowing,where:return_date IS NULL"`
	BorrowDate time.Time  `json:"borrow_date" gorm:"not null"`
	DueDate    time.Time  `json:"due_date" gorm:"not null"`
	ReturnDate *time.Time `json:"return_date,omitempty"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Book *Book `json:"book,omitempty" gorm:"foreignKey:BookID"`
}

func (Borrowing) TableName() string {
	return "borrowings"
}

// Active reports whether the book has not been returned yet.
func (b *Borrowing) Active() bool {
	return b.ReturnDate == nil
}
