package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/api"
	"github.com/brewkit/tapvote/internal/config"
	"github.com/brewkit/tapvote/internal/db"
	"github.com/brewkit/tapvote/internal/events"
	"github.com/brewkit/tapvote/internal/middleware"
	"github.com/brewkit/tapvote/internal/observ"
	"github.com/brewkit/tapvote/internal/reaper"
	"github.com/brewkit/tapvote/internal/repository/postgres"
	"github.com/brewkit/tapvote/internal/rotation"
	"github.com/brewkit/tapvote/internal/untappd"
	"github.com/brewkit/tapvote/internal/ws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	// Startup has no parent request, so Background() is the right root
	// context: take as long as the database needs.
	database, err := db.New(context.Background(), cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(context.Background()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	broadcaster, err := events.NewBroadcaster(redisClient, logger)
	if err != nil {
		return fmt.Errorf("create broadcaster: %w", err)
	}

	pool := database.Pool()
	userRepo := postgres.NewUserStore(pool)
	sessionRepo := postgres.NewSessionStore(pool)
	beerRepo := postgres.NewBeerStore(pool)
	queueRepo := postgres.NewSessionBeerStore(pool)
	ratingRepo := postgres.NewRatingStore(pool)
	memberRepo := postgres.NewMembershipStore(pool)
	criteriaRepo := postgres.NewCriteriaStore(pool)

	engine := rotation.NewService(
		sessionRepo,
		beerRepo,
		queueRepo,
		ratingRepo,
		memberRepo,
		criteriaRepo,
		broadcaster,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		logger,
	)

	hub := ws.NewHub(broadcaster, logger)
	catalog := untappd.NewClient(cfg.UntappdClientID, cfg.UntappdClientSecret)

	idleReaper := reaper.New(sessionRepo, engine, cfg.ReaperInterval, cfg.ReaperIdleCutoff, cfg.ReaperMinAge, logger)
	idleReaper.Start()
	defer idleReaper.Stop()

	authHandler := api.NewAuthHandler(userRepo, cfg.JWTSecret, logger)
	sessionHandler := api.NewSessionHandler(sessionRepo, memberRepo, criteriaRepo, queueRepo, engine, broadcaster, logger)
	beerHandler := api.NewBeerHandler(engine, beerRepo, catalog, logger)
	voteHandler := api.NewVoteHandler(engine, memberRepo, logger)
	resultsHandler := api.NewResultsHandler(sessionRepo, queueRepo, criteriaRepo, ratingRepo, logger)
	wsHandler := api.NewWSHandler(sessionRepo, hub, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := gin.New()
	srv.Use(gin.Logger(), gin.Recovery())

	// Health stays public so load balancers can probe it.
	srv.GET("/v1/health", func(c *gin.Context) {
		if err := database.Health(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	srv.POST("/v1/auth/signup", authHandler.Signup)
	srv.POST("/v1/auth/login", authHandler.Login)

	v1 := srv.Group("/v1")
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	v1.POST("/sessions", sessionHandler.Create)
	v1.POST("/sessions/join", sessionHandler.Join)
	v1.GET("/sessions/:id", sessionHandler.Get)
	v1.POST("/sessions/:id/leave", sessionHandler.Leave)
	v1.POST("/sessions/:id/start", sessionHandler.Start)
	v1.POST("/sessions/:id/finish", sessionHandler.Finish)
	v1.POST("/sessions/:id/beers", beerHandler.Add)
	v1.DELETE("/sessions/:id/beers", beerHandler.Remove)
	v1.POST("/sessions/:id/votes", voteHandler.Submit)
	v1.GET("/sessions/:id/results", resultsHandler.Get)
	v1.GET("/sessions/:id/ws", wsHandler.Attach)
	v1.POST("/sessions/:id/checkin", beerHandler.Checkin)
	v1.GET("/beers/search", beerHandler.Search)

	logger.Info("starting tapvote",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
	)
	if err := srv.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("run server: %w", err)
	}
	return nil
}
