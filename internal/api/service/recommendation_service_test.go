package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/api/repository"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newRecommendFixture(t *testing.T) (RecommendationService, *sqlx.DB, int64) {
	t.Helper()
	pool := newTestDB(t)
	userRepo := repository.NewUserRepository(pool)
	userSvc := NewUserService(userRepo, "admin123")
	user, err := userSvc.Register(context.Background(), &models.RegisterRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	svc := NewRecommendationService(
		repository.NewFavoriteRepository(pool),
		repository.NewHistoryRepository(pool),
	)
	return svc, pool, user.ID
}

func TestRecommendationService_CaseFoldsAuthors(t *testing.T) {
	svc, pool, userID := newRecommendFixture(t)
	ctx := context.Background()
	favRepo := repository.NewFavoriteRepository(pool)

	now := time.Now().UTC()
	require.NoError(t, favRepo.Create(ctx, &models.Favorite{
		UserID: userID, BookID: "OL1M", Title: "HP1", Author: strptr("J.K. Rowling"), AddedAt: now,
	}))
	require.NoError(t, favRepo.Create(ctx, &models.Favorite{
		UserID: userID, BookID: "OL2M", Title: "HP2", Author: strptr("j.k. rowling"), AddedAt: now.Add(time.Second),
	}))
	require.NoError(t, favRepo.Create(ctx, &models.Favorite{
		UserID: userID, BookID: "OL3M", Title: "Anonymous tales", Author: nil, AddedAt: now.Add(2 * time.Second),
	}))

	rec, err := svc.Recommend(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, userID, rec.UserID)
	require.ElementsMatch(t, []string{"j.k. rowling"}, rec.RecommendedAuthors)
	require.NotEmpty(t, rec.Message)
}

func TestRecommendationService_RecentSearchWindow(t *testing.T) {
	svc, pool, userID := newRecommendFixture(t)
	ctx := context.Background()
	historyRepo := repository.NewHistoryRepository(pool)

	// 12 distinct queries; only the 10 most recent feed the hints.
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		require.NoError(t, historyRepo.Create(ctx, &models.SearchHistory{
			UserID:     userID,
			Query:      fmt.Sprintf("Query-%d", i),
			SearchType: "book",
			SearchedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	rec, err := svc.Recommend(ctx, userID)
	require.NoError(t, err)

	want := make([]string, 0, 10)
	for i := 2; i < 12; i++ {
		want = append(want, fmt.Sprintf("query-%d", i)) // lower-cased
	}
	require.ElementsMatch(t, want, rec.RecentSearches)
}

func TestRecommendationService_DedupsSearches(t *testing.T) {
	svc, pool, userID := newRecommendFixture(t)
	ctx := context.Background()
	historyRepo := repository.NewHistoryRepository(pool)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, q := range []string{"Dune", "dune", "DUNE", "Hyperion"} {
		require.NoError(t, historyRepo.Create(ctx, &models.SearchHistory{
			UserID:     userID,
			Query:      q,
			SearchType: "book",
			SearchedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	rec, err := svc.Recommend(ctx, userID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"dune", "hyperion"}, rec.RecentSearches)
}

func TestRecommendationService_EmptyUser(t *testing.T) {
	svc, _, userID := newRecommendFixture(t)

	rec, err := svc.Recommend(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, rec.RecommendedAuthors)
	require.Empty(t, rec.RecentSearches)
	require.NotNil(t, rec.RecommendedAuthors) // [] in JSON, not null
	require.NotNil(t, rec.RecentSearches)
}
