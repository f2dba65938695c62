package repository

import (
	"context"
	"fmt"

	"bookatlas/book-discovery/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// AdminRepository defines the read-only global views behind the admin
// endpoints. No access control happens at this layer or above it.
type AdminRepository interface {
	AllUsers(ctx context.Context) ([]models.User, error)
	AllFavorites(ctx context.Context) ([]models.FavoriteWithOwner, error)
	AllHistory(ctx context.Context) ([]models.SearchHistoryWithOwner, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

type sqliteAdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new SQLite-based AdminRepository.
func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &sqliteAdminRepository{db: db}
}

// AllUsers returns every user in insertion order.
func (r *sqliteAdminRepository) AllUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT id, username, password, is_admin, created_at FROM user ORDER BY id`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// AllFavorites returns every favorite joined to its owner's username.
func (r *sqliteAdminRepository) AllFavorites(ctx context.Context) ([]models.FavoriteWithOwner, error) {
	favorites := []models.FavoriteWithOwner{}
	query := `SELECT f.id, f.user_id, f.book_id, f.title, f.author, f.cover_url, f.added_at, u.username
		FROM favorite f JOIN user u ON u.id = f.user_id ORDER BY f.id`
	if err := r.db.SelectContext(ctx, &favorites, query); err != nil {
		return nil, fmt.Errorf("failed to list all favorites: %w", err)
	}
	return favorites, nil
}

// AllHistory returns every history entry joined to its owner's username,
// most recent first.
func (r *sqliteAdminRepository) AllHistory(ctx context.Context) ([]models.SearchHistoryWithOwner, error) {
	entries := []models.SearchHistoryWithOwner{}
	query := `SELECT h.id, h.user_id, h.search_query, h.search_type, h.searched_at, u.username
		FROM search_history h JOIN user u ON u.id = h.user_id
		ORDER BY h.searched_at DESC, h.id DESC`
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to list all search history: %w", err)
	}
	return entries, nil
}

// Stats returns the global row counts in a single statement.
func (r *sqliteAdminRepository) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	query := `SELECT
		(SELECT COUNT(*) FROM user) AS total_users,
		(SELECT COUNT(*) FROM favorite) AS total_favorites,
		(SELECT COUNT(*) FROM search_history) AS total_searches`
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}
	return &stats, nil
}
