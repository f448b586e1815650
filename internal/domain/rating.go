package domain

import "time"

// Rating is a 1..5 star rating, one per (book, user); re-rating overwrites.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	BookID    int64     `json:"book_id" gorm:"uniqueIndex:uq_rating_book_user;not null"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex:uq_rating_book_user;not null"`
	Rating    int       `json:"rating" gorm:"not null" validate:"min=1,max=5"`
	CreatedAt time.Time `json:"created_at"`
}
