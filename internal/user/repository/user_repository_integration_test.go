//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"video_platform_service/internal/user/domain"
	"video_platform_service/pkg/database"
	"video_platform_service/pkg/logger"
	testtool "video_platform_service/pkg/test_tool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_PushWatchHistory(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	container, host, port, err := testtool.SetupContainer(ctx, testtool.MongoContainerRequest())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    fmt.Sprintf("mongodb://%s:%s", host, port),
		RetryCount:    5,
		RetryInterval: 1,
	}, "test_user_db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongoDB.Close(ctx) })

	repo := NewMongoUserRepository(mongoDB.Database)
	require.NoError(t, repo.EnsureIndexes(ctx))

	u := &domain.User{UserName: "viewer", FullName: "Viewer", Email: "viewer@example.com", Password: "hash"}
	u.PrepareForInsert(time.Now())
	require.NoError(t, repo.Create(ctx, u))

	t.Run("most recent first without duplicates", func(t *testing.T) {
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		require.NoError(t, repo.PushWatchHistory(ctx, u.ID, first))
		require.NoError(t, repo.PushWatchHistory(ctx, u.ID, second))
		require.NoError(t, repo.PushWatchHistory(ctx, u.ID, first))

		got, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{first, second}, got.WatchHistory)
	})

	t.Run("capped", func(t *testing.T) {
		var last primitive.ObjectID
		for i := 0; i < domain.WatchHistoryLimit+5; i++ {
			last = primitive.NewObjectID()
			require.NoError(t, repo.PushWatchHistory(ctx, u.ID, last))
		}

		got, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Len(t, got.WatchHistory, domain.WatchHistoryLimit)
		assert.Equal(t, last, got.WatchHistory[0])
	})

	t.Run("unknown user", func(t *testing.T) {
		err := repo.PushWatchHistory(ctx, primitive.NewObjectID(), primitive.NewObjectID())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
