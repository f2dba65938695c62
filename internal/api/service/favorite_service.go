package service

import (
	"context"
	"time"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/api/repository"
)

// FavoriteService defines the interface for favorite-book business logic.
type FavoriteService interface {
	Add(ctx context.Context, req *models.AddFavoriteRequest) (*models.Favorite, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Favorite, error)
	Remove(ctx context.Context, favoriteID int64) error
}

type favoriteService struct {
	favRepo repository.FavoriteRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favRepo repository.FavoriteRepository) FavoriteService {
	return &favoriteService{favRepo: favRepo}
}

// Add saves a book to a user's favorites. The same external book cannot
// be favorited twice by one user. The user id is taken as-is; only the
// foreign key constraint ties it to an existing user.
func (s *favoriteService) Add(ctx context.Context, req *models.AddFavoriteRequest) (*models.Favorite, error) {
	existing, err := s.favRepo.GetByUserAndBook(ctx, req.UserID, req.BookID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrAlreadyFavorited
	}

	fav := &models.Favorite{
		UserID:   req.UserID,
		BookID:   req.BookID,
		Title:    req.Title,
		Author:   req.Author,
		CoverURL: req.CoverURL,
		AddedAt:  time.Now().UTC(),
	}
	if err := s.favRepo.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// ListForUser returns a user's favorites, most recent first.
func (s *favoriteService) ListForUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return s.favRepo.ListByUser(ctx, userID)
}

// Remove deletes a favorite by its own id. There is no ownership check
// tying the id to a caller-supplied user.
func (s *favoriteService) Remove(ctx context.Context, favoriteID int64) error {
	return s.favRepo.Delete(ctx, favoriteID)
}
