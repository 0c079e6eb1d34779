package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/vidtube/vidtube/internal/api/handler"
	"github.com/vidtube/vidtube/internal/api/middleware"
	"github.com/vidtube/vidtube/internal/config"
	"github.com/vidtube/vidtube/internal/infrastructure/cache"
	"github.com/vidtube/vidtube/internal/infrastructure/postgres"
	"github.com/vidtube/vidtube/internal/infrastructure/queue"
	"github.com/vidtube/vidtube/internal/infrastructure/storage"
	"github.com/vidtube/vidtube/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Initialize infrastructure clients
	pgClient, err := postgres.NewClient(ctx, postgres.DefaultClientConfig(cfg.Database.DSN()))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pgClient.Close()
	logger.Info("connected to PostgreSQL")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to Redis")

	storageClient, err := storage.NewClient(ctx, storage.ClientConfig{
		Endpoint:       cfg.MinIO.Endpoint,
		PublicEndpoint: cfg.MinIO.PublicEndpoint,
		AccessKey:      cfg.MinIO.AccessKey,
		SecretKey:      cfg.MinIO.SecretKey,
		Bucket:         cfg.MinIO.Bucket,
		UseSSL:         cfg.MinIO.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	logger.Info("connected to MinIO")

	queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	// Repositories
	pool := pgClient.Pool()
	videoRepo := postgres.NewVideoRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	reactionRepo := postgres.NewReactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	playlistRepo := postgres.NewPlaylistRepository(pool)
	tweetRepo := postgres.NewTweetRepository(pool)

	// Services
	feedSvc := usecase.NewFeedService(
		videoRepo,
		commentRepo,
		reactionRepo,
		userRepo,
		usecase.FeedServiceConfig{FetchTimeout: cfg.Feed.FetchTimeout},
		logger,
	)
	channelSvc := usecase.NewCachedChannelService(
		usecase.NewChannelService(videoRepo, reactionRepo, subscriptionRepo, userRepo, feedSvc, logger),
		cache.NewRedisStatsCache(redisClient),
		usecase.CachedChannelServiceConfig{StatsTTL: cfg.Feed.StatsCacheTTL},
		logger,
	)
	videoSvc := usecase.NewVideoService(
		videoRepo,
		commentRepo,
		reactionRepo,
		storageClient,
		queueClient,
		channelSvc,
		usecase.VideoServiceConfig{UploadURLExpiry: cfg.Feed.UploadURLExpiry},
		logger,
	)
	commentSvc := usecase.NewCommentService(commentRepo, videoRepo, reactionRepo, userRepo, queueClient, logger)
	reactionSvc := usecase.NewReactionService(reactionRepo, videoRepo, commentRepo, tweetRepo, queueClient, channelSvc, logger)
	subscriptionSvc := usecase.NewSubscriptionService(subscriptionRepo, userRepo, queueClient, channelSvc, logger)
	playlistSvc := usecase.NewPlaylistService(playlistRepo, videoRepo)
	tweetSvc := usecase.NewTweetService(tweetRepo, reactionRepo)

	r := setupRouter(logger, handlers{
		feed:         handler.NewFeedHandler(feedSvc),
		video:        handler.NewVideoHandler(videoSvc),
		comment:      handler.NewCommentHandler(commentSvc),
		reaction:     handler.NewReactionHandler(reactionSvc),
		subscription: handler.NewSubscriptionHandler(subscriptionSvc),
		playlist:     handler.NewPlaylistHandler(playlistSvc),
		tweet:        handler.NewTweetHandler(tweetSvc),
		channel:      handler.NewChannelHandler(channelSvc),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

type handlers struct {
	feed         *handler.FeedHandler
	video        *handler.VideoHandler
	comment      *handler.CommentHandler
	reaction     *handler.ReactionHandler
	subscription *handler.SubscriptionHandler
	playlist     *handler.PlaylistHandler
	tweet        *handler.TweetHandler
	channel      *handler.ChannelHandler
}

func setupRouter(logger *slog.Logger, h handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/videos", func(r chi.Router) {
			r.Post("/", h.video.Publish)
			r.Get("/{videoID}", h.video.Get)
			r.Patch("/{videoID}", h.video.Update)
			r.Delete("/{videoID}", h.video.Delete)
			r.Post("/{videoID}/publish-toggle", h.video.TogglePublish)
			r.Get("/{videoID}/comments", h.feed.CommentFeed)
			r.Post("/{videoID}/comments", h.comment.Add)
			r.Post("/{videoID}/reactions", h.reaction.ToggleVideo)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Patch("/{commentID}", h.comment.Update)
			r.Delete("/{commentID}", h.comment.Delete)
			r.Post("/{commentID}/reactions", h.reaction.ToggleComment)
		})

		r.Route("/channels/{channelID}", func(r chi.Router) {
			r.Get("/videos", h.feed.VideoFeed)
			r.Get("/stats", h.channel.Stats)
			r.Get("/dashboard", h.channel.Dashboard)
			r.Post("/subscription-toggle", h.subscription.Toggle)
			r.Get("/subscribers", h.subscription.Subscribers)
		})

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/liked-videos", h.reaction.LikedVideos)
			r.Get("/subscriptions", h.subscription.SubscribedChannels)
			r.Get("/playlists", h.playlist.ListByOwner)
			r.Get("/tweets", h.tweet.ListByOwner)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Post("/", h.playlist.Create)
			r.Get("/{playlistID}", h.playlist.Get)
			r.Delete("/{playlistID}", h.playlist.Delete)
			r.Put("/{playlistID}/videos/{videoID}", h.playlist.AddVideo)
			r.Delete("/{playlistID}/videos/{videoID}", h.playlist.RemoveVideo)
		})

		r.Route("/tweets", func(r chi.Router) {
			r.Post("/", h.tweet.Create)
			r.Patch("/{tweetID}", h.tweet.Update)
			r.Delete("/{tweetID}", h.tweet.Delete)
			r.Post("/{tweetID}/reactions", h.reaction.ToggleTweet)
		})
	})

	return r
}
