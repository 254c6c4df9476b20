package repository

import (
	"context"
	"encoding/json"

	"video_platform_service/internal/notification/domain"
	"video_platform_service/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisPubSub definition redis pub/sub
type RedisPubSub struct {
	client *redis.Client
}

// NewRedisPubSub create RedisPubSub
func NewRedisPubSub(client *redis.Client) *RedisPubSub {
	return &RedisPubSub{client: client}
}

// Publish 將 message 序列化後，發布到指定 channel
func (r *RedisPubSub) Publish(ctx context.Context, channel string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, channel, data).Err()
}

// Subscribe 訂閱 channel，收到訊息後呼叫 handler 處理，ctx 結束時關閉訂閱
func (r *RedisPubSub) Subscribe(ctx context.Context, channel string, handler func(domain.Event)) error {
	sub := r.client.Subscribe(ctx, channel)
	// 確認訂閱成功再回傳
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return err
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()

		for {
			select {
			case m, ok := <-ch:
				if !ok {
					return
				}

				var n domain.Notification
				if err := json.Unmarshal([]byte(m.Payload), &n); err != nil {
					logger.Log.Error("notification payload", zap.String("channel", channel), zap.Error(err))
					continue
				}
				handler(domain.Event{Action: domain.EventNotification, Notification: &n})
			case <-ctx.Done():
				logger.Log.Debug("sub close", zap.String("channel", channel))
				return
			}
		}
	}()
	return nil
}
