package repository

import (
	"context"
	"fmt"

	"bookatlas/book-discovery/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// HistoryRepository defines the interface for search-history data
// operations. Rows are append-only; there is no update or single delete.
type HistoryRepository interface {
	Create(ctx context.Context, entry *models.SearchHistory) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.SearchHistory, error)
}

type sqliteHistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new SQLite-based HistoryRepository.
func NewHistoryRepository(db *sqlx.DB) HistoryRepository {
	return &sqliteHistoryRepository{db: db}
}

// Create inserts a new history entry and fills in the generated id.
func (r *sqliteHistoryRepository) Create(ctx context.Context, entry *models.SearchHistory) error {
	query := `INSERT INTO search_history (user_id, search_query, search_type, searched_at)
		VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, entry.UserID, entry.Query, entry.SearchType, entry.SearchedAt)
	if err != nil {
		return fmt.Errorf("failed to create history entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new history id: %w", err)
	}
	entry.ID = id
	return nil
}

// ListByUser returns the most recent limit entries for a user,
// searched_at descending.
func (r *sqliteHistoryRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.SearchHistory, error) {
	entries := []models.SearchHistory{}
	query := `SELECT id, user_id, search_query, search_type, searched_at
		FROM search_history WHERE user_id = ? ORDER BY searched_at DESC, id DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &entries, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list search history: %w", err)
	}
	return entries, nil
}
