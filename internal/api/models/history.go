package models

import "time"

// SearchHistory is one logged catalog search. Rows are append-only.
type SearchHistory struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	Query      string    `db:"search_query" json:"query"`
	SearchType string    `db:"search_type" json:"search_type"`
	SearchedAt time.Time `db:"searched_at" json:"searched_at"`
}

// LogSearchRequest defines the structure for a log-search request.
// SearchType falls back to "book" when omitted.
type LogSearchRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	Query      string `json:"query" binding:"required"`
	SearchType string `json:"search_type"`
}
