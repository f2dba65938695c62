package service

import (
	"context"
	"time"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/api/repository"
)

// DefaultHistoryLimit caps list-history responses when the caller gives
// no limit of its own.
const DefaultHistoryLimit = 20

// defaultSearchType tags entries whose request left search_type empty.
const defaultSearchType = "book"

// HistoryService defines the interface for search-history business logic.
type HistoryService interface {
	Log(ctx context.Context, req *models.LogSearchRequest) (*models.SearchHistory, error)
	ListForUser(ctx context.Context, userID int64, limit int) ([]models.SearchHistory, error)
}

type historyService struct {
	historyRepo repository.HistoryRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(historyRepo repository.HistoryRepository) HistoryService {
	return &historyService{historyRepo: historyRepo}
}

// Log records a search. Every call inserts a row; there is no dedup.
func (s *historyService) Log(ctx context.Context, req *models.LogSearchRequest) (*models.SearchHistory, error) {
	searchType := req.SearchType
	if searchType == "" {
		searchType = defaultSearchType
	}

	entry := &models.SearchHistory{
		UserID:     req.UserID,
		Query:      req.Query,
		SearchType: searchType,
		SearchedAt: time.Now().UTC(),
	}
	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListForUser returns the user's most recent searches. A non-positive
// limit falls back to DefaultHistoryLimit.
func (s *historyService) ListForUser(ctx context.Context, userID int64, limit int) ([]models.SearchHistory, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.historyRepo.ListByUser(ctx, userID, limit)
}
