package models

import "time"

// Favorite is a book a user saved from the external catalog. The pair
// (user_id, book_id) is unique per user.
type Favorite struct {
	ID       int64     `db:"id" json:"id"`
	UserID   int64     `db:"user_id" json:"user_id"`
	BookID   string    `db:"book_id" json:"book_id"`
	Title    string    `db:"title" json:"title"`
	Author   *string   `db:"author" json:"author"`
	CoverURL *string   `db:"cover_url" json:"cover_url"`
	AddedAt  time.Time `db:"added_at" json:"added_at"`
}

// AddFavoriteRequest defines the structure for an add-favorite request.
// Author and cover URL are optional and stored as NULL when absent.
type AddFavoriteRequest struct {
	UserID   int64   `json:"user_id" binding:"required"`
	BookID   string  `json:"book_id" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Author   *string `json:"author"`
	CoverURL *string `json:"cover_url"`
}
