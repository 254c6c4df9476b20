package app

import (
	"context"
	"sync"
	"time"

	"video_platform_service/internal/notification/domain"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/middlewares"
	"video_platform_service/pkg/token"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

const (
	// pingInterval server ping period
	pingInterval = time.Minute
	writeWait    = 10 * time.Second
)

// wsConn the part of *websocket.Conn the feed uses
type wsConn interface {
	ReadMessage() (int, []byte, error)
	WriteJSON(v interface{}) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// NotificationWebsocketHandler push new notifications of the connected user
type NotificationWebsocketHandler struct {
	pubsub PubSub
}

// NewNotificationWebsocketHandler create NotificationWebsocketHandler
func NewNotificationWebsocketHandler(pubsub PubSub) *NotificationWebsocketHandler {
	return &NotificationWebsocketHandler{pubsub: pubsub}
}

// HandleConnection 是 WebSocket 連線的進入點
func (h *NotificationWebsocketHandler) HandleConnection(conn *websocket.Conn) {
	userID := ""
	if identity, ok := conn.Locals(middlewares.LocalIdentity).(*token.Identity); ok && identity != nil {
		userID = identity.UserID
	}
	h.serve(conn, userID)
}

func (h *NotificationWebsocketHandler) serve(conn wsConn, userID string) {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := time.NewTicker(pingInterval)
	var writer sync.WaitGroup

	// handler 返回後 conn 會被回收，writer 必須先結束
	defer func() {
		cancel()
		writer.Wait()
		ticker.Stop()
		conn.Close()
		logger.Log.Info("notification websocket close", zap.String("userID", userID))
	}()

	if userID == "" || h.pubsub == nil {
		_ = conn.WriteJSON(domain.Event{Action: "unavailable"})
		return
	}

	// 寫入需序列化，subscribe goroutine 與 ping 共用
	writes := make(chan interface{}, 16)

	err := h.pubsub.Subscribe(ctx, domain.Channel(userID), func(ev domain.Event) {
		select {
		case writes <- ev:
		case <-ctx.Done():
		}
	})
	if err != nil {
		logger.Log.Error("notification subscribe failed", zap.String("userID", userID), zap.Error(err))
		_ = conn.WriteJSON(domain.Event{Action: "unavailable"})
		return
	}

	writer.Add(1)
	go func() {
		defer writer.Done()
		for {
			select {
			case msg := <-writes:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(msg); err != nil {
					logger.Log.Warn("websocket write", zap.String("userID", userID), zap.Error(err))
					cancel()
					return
				}
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(writeWait)); err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// 讀到錯誤 (含 client close) 即結束連線
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				logger.Log.Debug("websocket read error", zap.String("userID", userID), zap.Error(err))
			}
			return
		}
	}
}
