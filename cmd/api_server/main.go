package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video_platform_service/cmd/api_server/docs" // 引入生成的 Swagger 文档
	analyticsapp "video_platform_service/internal/analytics/app"
	analyticsrepo "video_platform_service/internal/analytics/repository"
	"video_platform_service/internal/api/handlers"
	"video_platform_service/internal/api/router"
	notificationapp "video_platform_service/internal/notification/app"
	notificationrepo "video_platform_service/internal/notification/repository"
	socialapp "video_platform_service/internal/social/app"
	socialrepo "video_platform_service/internal/social/repository"
	userapp "video_platform_service/internal/user/app"
	userrepo "video_platform_service/internal/user/repository"
	videoapp "video_platform_service/internal/video/app"
	videorepo "video_platform_service/internal/video/repository"
	"video_platform_service/pkg/config"
	"video_platform_service/pkg/database"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/middlewares"
	testtool "video_platform_service/pkg/test_tool"
	"video_platform_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.APIServer, config.EnvConfig.APIServerLogPath)
	defer logger.Log.Sync()

	cfg := config.LoadConfig[config.APIServer](config.EnvConfig.APIServer, config.EnvConfig.APIServerYAMLPath)
	cfg.SetDefaults()

	ctx := context.Background()

	mongo, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    cfg.MongoDB.URI,
		RetryCount:    cfg.MongoDB.RetryCount,
		RetryInterval: time.Duration(cfg.MongoDB.RetryInterval),
	}, cfg.MongoDB.Database)
	if err != nil {
		logger.Log.Fatal("Unable to connect to mongoDB after retries", zap.String("uri", cfg.MongoDB.URI), zap.Error(err))
	}
	defer mongo.Close(context.Background())

	store, err := database.NewMinIOConnection(database.MinIOConnection{
		Endpoint:      cfg.MinIO.Endpoint,
		User:          cfg.MinIO.User,
		Password:      cfg.MinIO.Password,
		BucketName:    cfg.MinIO.Bucket,
		UseSSL:        cfg.MinIO.UseSSL,
		PublicURL:     cfg.MinIO.PublicURL,
		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: time.Duration(cfg.MinIO.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to minIO", zap.String("endpoint", cfg.MinIO.Endpoint), zap.Error(err))
	}

	// redis 只負責 logout 撤銷與通知推播，連不上就降級
	var (
		revoked token.RevocationList
		pubsub  notificationapp.PubSub
	)
	masterName, sentinels := config.GetRedisSetting()
	redisClient, err := database.NewRedisClient(ctx, database.RedisConnection{
		Addr:       cfg.Redis.Addr,
		Password:   cfg.Redis.Password,
		DB:         cfg.Redis.RedisDB,
		MasterName: masterName,
		Sentinels:  sentinels,
	})
	if err != nil {
		logger.Log.Warn("redis unavailable, token revocation and live notifications disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		revoked = token.NewRedisRevocationList(database.NewRedisRepository[bool](redisClient))
		pubsub = notificationrepo.NewRedisPubSub(redisClient)
	}

	tokens, err := token.NewManager(cfg.Token, config.EnvConfig.APIServer)
	if err != nil {
		logger.Log.Fatal("token manager", zap.Error(err))
	}

	// repositories
	db := mongo.Database
	userRepo := userrepo.NewMongoUserRepository(db)
	videoRepo := videorepo.NewMongoVideoRepository(db)
	subscriptionRepo := socialrepo.NewMongoSubscriptionRepository(db)
	likeRepo := socialrepo.NewMongoLikeRepository(db)
	commentRepo := socialrepo.NewMongoCommentRepository(db)
	playlistRepo := socialrepo.NewMongoPlaylistRepository(db)
	notificationRepo := notificationrepo.NewMongoNotificationRepository(db)
	analyticsRepo := analyticsrepo.NewMongoAnalyticsRepository(db)

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = database.EnsureIndexes(indexCtx,
		userRepo, videoRepo, subscriptionRepo, likeRepo, commentRepo, playlistRepo, notificationRepo, analyticsRepo,
	)
	cancel()
	if err != nil {
		logger.Log.Fatal("create indexes failed", zap.Error(err))
	}

	// use cases
	analyticsUC := analyticsapp.NewAnalyticsUseCase(analyticsRepo)
	userUC := userapp.NewUserUseCase(userRepo, tokens, store, revoked, subscriptionRepo, videoRepo)
	notificationUC := notificationapp.NewNotificationUseCase(notificationRepo, userUC, pubsub)

	videos := videoapp.NewLookup(videoRepo)
	subscriptionUC := socialapp.NewSubscriptionUseCase(subscriptionRepo, userUC, notificationUC, analyticsUC)
	likeUC := socialapp.NewLikeUseCase(likeRepo, commentRepo, videos, analyticsUC)
	commentUC := socialapp.NewCommentUseCase(commentRepo, likeRepo, videos, notificationUC, analyticsUC)
	playlistUC := socialapp.NewPlaylistUseCase(playlistRepo, videos)

	videoUC := videoapp.NewVideoUseCase(videoRepo, store, notificationUC, analyticsUC, userUC, subscriptionRepo,
		likeUC, commentUC, playlistUC,
	)

	uploads := handlers.Uploads{TmpDir: cfg.Upload.TmpDir}
	if err := os.MkdirAll(uploads.TmpDir, 0o755); err != nil {
		logger.Log.Fatal("create upload tmp dir", zap.String("dir", uploads.TmpDir), zap.Error(err))
	}

	// 创建 Fiber 应用
	r := fiber.New(fiber.Config{
		AppName:      config.EnvConfig.APIServer,
		ErrorHandler: errprocess.NewErrorHandler(config.IsProduction),
		BodyLimit:    cfg.Upload.MaxSizeMB * 1024 * 1024,
	})

	// 添加日志中间件
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.APIServerLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(recover.New())
	r.Use(corsMiddleware(cfg.CorsOrigin))
	r.Use(fiber_log.New(fiber_log.Config{
		Output: file, // 将日志输出到文件
	}))

	// 注册路由
	router.RegisterRoutes(r, cfg.APIPrefix, middlewares.NewAuthGate(tokens, userUC, revoked), router.Handlers{
		User:           handlers.NewUserHandler(userUC, videoUC, cfg.Token, uploads),
		Channel:        handlers.NewChannelHandler(userUC, analyticsUC, uploads),
		Video:          handlers.NewVideoHandler(videoUC, uploads),
		Social:         handlers.NewSocialHandler(subscriptionUC, likeUC, commentUC, playlistUC),
		Notification:   handlers.NewNotificationHandler(notificationUC),
		NotificationWS: notificationapp.NewNotificationWebsocketHandler(pubsub),
	})

	testtool.StartPprof(os.Getenv("PPROF_ADDR"))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Log.Info("shutting down server")
		if err := r.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Log.Error("server shutdown", zap.Error(err))
		}
	}()

	logger.Log.Info("api server listening", zap.String("port", cfg.Port), zap.String("prefix", cfg.APIPrefix))
	// 启动服务器
	if err := r.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}

// corsMiddleware credentials need an explicit origin list, "*" falls back to anonymous cors
func corsMiddleware(origin string) fiber.Handler {
	if origin == "" || origin == "*" {
		return cors.New()
	}
	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowCredentials: true,
	})
}
