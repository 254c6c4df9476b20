//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"video_platform_service/internal/notification/domain"
	"video_platform_service/pkg/database"
	"video_platform_service/pkg/logger"
	testtool "video_platform_service/pkg/test_tool"
	"video_platform_service/pkg/token"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()
	logger.SetNewNop()

	container, host, port, err := testtool.SetupContainer(ctx, testtool.RedisContainerRequest())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	client, err := database.NewRedisClient(ctx, database.RedisConnection{Addr: fmt.Sprintf("%s:%s", host, port)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedis(t *testing.T) {
	client := setupRedis(t)

	t.Run("revocation list expires with the token", func(t *testing.T) {
		ctx := context.Background()
		list := token.NewRedisRevocationList(database.NewRedisRepository[bool](client))

		require.NoError(t, list.Revoke(ctx, "jti-1", time.Second))
		revoked, err := list.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)

		revoked, err = list.IsRevoked(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, revoked)

		assert.Eventually(t, func() bool {
			revoked, err := list.IsRevoked(ctx, "jti-1")
			return err == nil && !revoked
		}, 5*time.Second, 100*time.Millisecond)
	})

	t.Run("pubsub delivers to the recipient channel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ps := NewRedisPubSub(client)

		recipient := primitive.NewObjectID()
		events := make(chan domain.Event, 1)
		require.NoError(t, ps.Subscribe(ctx, domain.Channel(recipient.Hex()), func(e domain.Event) { events <- e }))

		n := domain.Notification{
			ID:        primitive.NewObjectID(),
			Recipient: recipient,
			Sender:    primitive.NewObjectID(),
			Type:      domain.TypeComment,
			Content:   "new comment",
		}
		// 其他使用者的 channel 不應收到
		require.NoError(t, ps.Publish(ctx, domain.Channel(primitive.NewObjectID().Hex()), n))
		require.NoError(t, ps.Publish(ctx, domain.Channel(recipient.Hex()), n))

		select {
		case e := <-events:
			assert.Equal(t, domain.EventNotification, e.Action)
			require.NotNil(t, e.Notification)
			assert.Equal(t, n.ID, e.Notification.ID)
			assert.Equal(t, "new comment", e.Notification.Content)
		case <-time.After(5 * time.Second):
			t.Fatal("notification was not delivered")
		}
	})
}
