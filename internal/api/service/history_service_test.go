package service

import (
	"context"
	"fmt"
	"testing"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/api/repository"

	"github.com/stretchr/testify/require"
)

func newHistoryFixture(t *testing.T) (HistoryService, int64) {
	t.Helper()
	pool := newTestDB(t)
	userRepo := repository.NewUserRepository(pool)
	userSvc := NewUserService(userRepo, "admin123")
	user, err := userSvc.Register(context.Background(), &models.RegisterRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	return NewHistoryService(repository.NewHistoryRepository(pool)), user.ID
}

func TestHistoryService_Log_DefaultsSearchType(t *testing.T) {
	svc, userID := newHistoryFixture(t)
	ctx := context.Background()

	entry, err := svc.Log(ctx, &models.LogSearchRequest{UserID: userID, Query: "dune"})
	require.NoError(t, err)
	require.Equal(t, "book", entry.SearchType)
	require.False(t, entry.SearchedAt.IsZero())

	entry, err = svc.Log(ctx, &models.LogSearchRequest{UserID: userID, Query: "herbert", SearchType: "author"})
	require.NoError(t, err)
	require.Equal(t, "author", entry.SearchType)
}

func TestHistoryService_Log_NoDedup(t *testing.T) {
	svc, userID := newHistoryFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Log(ctx, &models.LogSearchRequest{UserID: userID, Query: "dune"})
		require.NoError(t, err)
	}

	entries, err := svc.ListForUser(ctx, userID, 20)
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestHistoryService_ListForUser_DefaultLimit(t *testing.T) {
	svc, userID := newHistoryFixture(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.Log(ctx, &models.LogSearchRequest{UserID: userID, Query: fmt.Sprintf("query-%d", i)})
		require.NoError(t, err)
	}

	entries, err := svc.ListForUser(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, entries, DefaultHistoryLimit)

	entries, err = svc.ListForUser(ctx, userID, 5)
	require.NoError(t, err)
	require.Len(t, entries, 5)
}
