package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookatlas/book-discovery/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// FavoriteRepository defines the interface for favorite data operations.
type FavoriteRepository interface {
	Create(ctx context.Context, fav *models.Favorite) error
	GetByUserAndBook(ctx context.Context, userID int64, bookID string) (*models.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

type sqliteFavoriteRepository struct {
	db *sqlx.DB
}

// NewFavoriteRepository creates a new SQLite-based FavoriteRepository.
func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &sqliteFavoriteRepository{db: db}
}

// Create inserts a new favorite and fills in the generated id. The
// UNIQUE(user_id, book_id) constraint backs the service-level pre-check,
// so concurrent adds racing past the check still map to the same error.
func (r *sqliteFavoriteRepository) Create(ctx context.Context, fav *models.Favorite) error {
	query := `INSERT INTO favorite (user_id, book_id, title, author, cover_url, added_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, fav.UserID, fav.BookID, fav.Title, fav.Author, fav.CoverURL, fav.AddedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrAlreadyFavorited
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new favorite id: %w", err)
	}
	fav.ID = id
	return nil
}

// GetByUserAndBook retrieves a favorite by its (user_id, book_id) pair.
func (r *sqliteFavoriteRepository) GetByUserAndBook(ctx context.Context, userID int64, bookID string) (*models.Favorite, error) {
	var fav models.Favorite
	query := `SELECT id, user_id, book_id, title, author, cover_url, added_at
		FROM favorite WHERE user_id = ? AND book_id = ?`
	err := r.db.GetContext(ctx, &fav, query, userID, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get favorite: %w", err)
	}
	return &fav, nil
}

// ListByUser returns all favorites for a user, most recent first.
func (r *sqliteFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	favorites := []models.Favorite{}
	query := `SELECT id, user_id, book_id, title, author, cover_url, added_at
		FROM favorite WHERE user_id = ? ORDER BY added_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &favorites, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// Delete removes a favorite by id. Returns ErrFavoriteNotFound when no
// row matches.
func (r *sqliteFavoriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM favorite WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return models.ErrFavoriteNotFound
	}
	return nil
}
