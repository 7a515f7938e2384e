package models

type Book struct {
	ID              int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	ISBN            string  `json:"isbn" gorm:"uniqueIndex;size:20;not null"`
	Title           string  `json:"title" gorm:"not null"`
	Author          string  `json:"author" gorm:"not null"`
	Genre           string  `json:"genre" gorm:"not null"`
	Copies          int     `json:"copies" gorm:"not null"`
	AvailableCopies int     `json:"available_copies" gorm:"not null"`
	Rating          float64 `json:"rating" gorm:"not null;default:0"`
	BorrowedCount   int     `json:"borrowed_count" gorm:"not null;default:0"`
}

func (Book) TableName() string {
	return "books"
}
