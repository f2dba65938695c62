package models

// FavoriteWithOwner is a favorite joined to its owning user's username,
// used by the admin views.
type FavoriteWithOwner struct {
	Favorite
	Username string `db:"username" json:"username"`
}

// SearchHistoryWithOwner is a history entry joined to its owner's username.
type SearchHistoryWithOwner struct {
	SearchHistory
	Username string `db:"username" json:"username"`
}

// Stats holds the global row counts for the admin dashboard.
type Stats struct {
	TotalUsers     int64 `db:"total_users" json:"total_users"`
	TotalFavorites int64 `db:"total_favorites" json:"total_favorites"`
	TotalSearches  int64 `db:"total_searches" json:"total_searches"`
}

// Recommendation carries the derived search hints for a user. The two
// lists are deduplicated sets; element order is unspecified.
type Recommendation struct {
	UserID             int64    `json:"user_id"`
	RecommendedAuthors []string `json:"recommended_authors"`
	RecentSearches     []string `json:"recent_searches"`
	Message            string   `json:"message"`
}
