//go:build integration

package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	userdomain "video_platform_service/internal/user/domain"
	userrepo "video_platform_service/internal/user/repository"
	"video_platform_service/internal/video/domain"
	"video_platform_service/pkg/database"
	"video_platform_service/pkg/logger"
	testtool "video_platform_service/pkg/test_tool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var testDB *mongo.Database

// **TestMain 初始化測試環境**
func TestMain(m *testing.M) {
	ctx := context.Background()
	logger.SetNewNop()

	container, host, port, err := testtool.SetupContainer(ctx, testtool.MongoContainerRequest())
	if err != nil {
		log.Fatalf("❌ Failed to start MongoDB container: %v", err)
	}

	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    fmt.Sprintf("mongodb://%s:%s", host, port),
		RetryCount:    5,
		RetryInterval: 1,
	}, "test_video_db")
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	testDB = mongoDB.Database

	code := m.Run()

	_ = mongoDB.Close(ctx)
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func seedOwner(t *testing.T, ctx context.Context, name string) *userdomain.User {
	t.Helper()
	users := userrepo.NewMongoUserRepository(testDB)
	u := &userdomain.User{UserName: name, FullName: name, Email: name + "@example.com", Password: "hash"}
	u.PrepareForInsert(time.Now())
	require.NoError(t, users.Create(ctx, u))
	return u
}

func TestVideoRepository_List(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testDB.Collection("videos").Drop(ctx))
	repo := NewMongoVideoRepository(testDB)
	require.NoError(t, repo.EnsureIndexes(ctx))

	owner := seedOwner(t, ctx, "lister")
	other := seedOwner(t, ctx, "someone")

	for i := 0; i < 12; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Video{
			Title: fmt.Sprintf("video %02d", i), Description: "desc", Views: int64(i),
			IsPublished: true, Owner: owner.ID, Tags: []string{"misc"},
		}))
	}
	require.NoError(t, repo.Create(ctx, &domain.Video{Title: "draft", Owner: owner.ID, IsPublished: false}))
	require.NoError(t, repo.Create(ctx, &domain.Video{
		Title: "Golang Tips", Description: "channels", IsPublished: true, Owner: other.ID, Tags: []string{"go"},
	}))

	plan, err := domain.BuildListPlan(domain.ListQuery{
		Page: "3", Limit: "5", SortBy: "views", SortOrder: "asc", UserID: owner.ID.Hex(),
	})
	require.NoError(t, err)

	items, total, err := repo.List(ctx, plan)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total, "draft must not be counted")
	require.Len(t, items, 2)
	assert.Equal(t, int64(10), items[0].Views)
	assert.Equal(t, int64(11), items[1].Views)
	assert.Equal(t, "lister", items[0].Owner.UserName)
	assert.Equal(t, owner.ID, items[0].Owner.ID)

	plan, err = domain.BuildListPlan(domain.ListQuery{Query: "golang"})
	require.NoError(t, err)
	items, total, err = repo.List(ctx, plan)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Golang Tips", items[0].Title)

	plan, err = domain.BuildListPlan(domain.ListQuery{Query: "GO"})
	require.NoError(t, err)
	_, total, err = repo.List(ctx, plan)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "match is case-insensitive")

	plan, err = domain.BuildListPlan(domain.ListQuery{Page: "9"})
	require.NoError(t, err)
	items, total, err = repo.List(ctx, plan)
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
	assert.Empty(t, items)

	count, err := repo.CountByOwner(ctx, owner.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(13), count)
	count, err = repo.CountByOwner(ctx, owner.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestVideoRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoVideoRepository(testDB)
	owner := seedOwner(t, ctx, "lifecycle")

	first := &domain.Video{Title: "first", IsPublished: true, Owner: owner.ID}
	second := &domain.Video{Title: "second", IsPublished: true, Owner: owner.ID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.IncrementViews(ctx, first.ID))
	shared, err := repo.IncrementShares(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), shared.Shares)
	assert.Equal(t, int64(1), shared.Views)

	details, err := repo.FindDetailsByIDs(ctx, []primitive.ObjectID{second.ID, primitive.NewObjectID(), first.ID})
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, second.ID, details[0].ID)
	assert.Equal(t, first.ID, details[1].ID)
	assert.Equal(t, "lifecycle", details[1].Owner.UserName)

	title := "renamed"
	published := false
	updated, err := repo.Update(ctx, first.ID, domain.VideoUpdate{Title: &title, IsPublished: &published})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.False(t, updated.IsPublished)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), domain.ErrVideoNotFound)
}
