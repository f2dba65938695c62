package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bookatlas/book-discovery/internal/api/models"

	"github.com/stretchr/testify/require"
)

func TestHistoryRepository_Create(t *testing.T) {
	pool := newTestDB(t)
	repo := NewHistoryRepository(pool)
	ctx := context.Background()
	userID := newTestUser(t, pool, "alice")

	entry := &models.SearchHistory{
		UserID:     userID,
		Query:      "dune",
		SearchType: "book",
		SearchedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, entry))
	require.NotZero(t, entry.ID)

	entries, err := repo.ListByUser(ctx, userID, 20)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "dune", entries[0].Query)
	require.Equal(t, "book", entries[0].SearchType)
}

func TestHistoryRepository_ListByUser_LimitAndOrder(t *testing.T) {
	pool := newTestDB(t)
	repo := NewHistoryRepository(pool)
	ctx := context.Background()
	userID := newTestUser(t, pool, "alice")

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.SearchHistory{
			UserID:     userID,
			Query:      fmt.Sprintf("query-%d", i),
			SearchType: "book",
			SearchedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := repo.ListByUser(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "query-4", entries[0].Query)
	require.Equal(t, "query-3", entries[1].Query)
}

func TestHistoryRepository_ListByUser_ScopedToUser(t *testing.T) {
	pool := newTestDB(t)
	repo := NewHistoryRepository(pool)
	ctx := context.Background()
	alice := newTestUser(t, pool, "alice")
	bob := newTestUser(t, pool, "bob")

	require.NoError(t, repo.Create(ctx, &models.SearchHistory{
		UserID: alice, Query: "dune", SearchType: "book", SearchedAt: time.Now().UTC(),
	}))

	entries, err := repo.ListByUser(ctx, bob, 20)
	require.NoError(t, err)
	require.Empty(t, entries)
}
