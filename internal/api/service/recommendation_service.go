package service

import (
	"context"
	"strings"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/api/repository"
)

// recentSearchWindow is how many history entries feed the hints.
const recentSearchWindow = 10

// recommendationMessage mirrors what clients expect to show next to the
// derived terms.
const recommendationMessage = "Use these terms to search for recommendations in the Open Library API"

// RecommendationService derives search hints from a user's favorites and
// recent history. It is a pure read-aggregate: it returns terms, not
// resolved books, and makes no external call.
type RecommendationService interface {
	Recommend(ctx context.Context, userID int64) (*models.Recommendation, error)
}

type recommendationService struct {
	favRepo     repository.FavoriteRepository
	historyRepo repository.HistoryRepository
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(favRepo repository.FavoriteRepository, historyRepo repository.HistoryRepository) RecommendationService {
	return &recommendationService{favRepo: favRepo, historyRepo: historyRepo}
}

// Recommend builds two lower-cased, deduplicated sets: the distinct
// authors across all of the user's favorites and the distinct queries
// from the 10 most recent searches. Element order is unspecified.
func (s *recommendationService) Recommend(ctx context.Context, userID int64) (*models.Recommendation, error) {
	favorites, err := s.favRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.historyRepo.ListByUser(ctx, userID, recentSearchWindow)
	if err != nil {
		return nil, err
	}

	authors := make(map[string]struct{})
	for _, fav := range favorites {
		if fav.Author != nil && *fav.Author != "" {
			authors[strings.ToLower(*fav.Author)] = struct{}{}
		}
	}

	searches := make(map[string]struct{})
	for _, entry := range history {
		searches[strings.ToLower(entry.Query)] = struct{}{}
	}

	return &models.Recommendation{
		UserID:             userID,
		RecommendedAuthors: setToList(authors),
		RecentSearches:     setToList(searches),
		Message:            recommendationMessage,
	}, nil
}

func setToList(set map[string]struct{}) []string {
	list := make([]string, 0, len(set))
	for item := range set {
		list = append(list, item)
	}
	return list
}
