package main

import (
	"context"
	"fmt"
	"time"

	"digital-api/config"
	"digital-api/config/postgre"
	configRedis "digital-api/config/redis"
	authRedis "digital-api/internal/auth/repository/redis"
	authUsecase "digital-api/internal/auth/usecase"
	"digital-api/internal/httpserver"
	"digital-api/internal/policy"
	userPostgres "digital-api/internal/user/repository/postgre"
	userUsecase "digital-api/internal/user/usecase"
	pkgJWT "digital-api/pkg/jwt"
	"digital-api/pkg/log"
)

const (
	loginMaxAttempts = 5
	loginWindow      = 15 * time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(db)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis
	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Initialize JWT manager
	jwtMgr, err := pkgJWT.New(pkgJWT.Config{
		AccessSecretKey:  cfg.JWT.AccessSecretKey,
		RefreshSecretKey: cfg.JWT.RefreshSecretKey,
		AccessTTL:        cfg.JWT.AccessTTL,
		RefreshTTL:       cfg.JWT.RefreshTTL,
		Issuer:           cfg.JWT.Issuer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// Repositories
	userRepo := userPostgres.New(logger, db)
	tokenRepo := authRedis.NewTokenRepository(logger, redisClient)
	loginLimiter := authRedis.NewLoginLimiter(logger, redisClient, loginMaxAttempts, loginWindow)

	// Use cases
	authUC := authUsecase.New(logger, authUsecase.Config{RefreshTTL: cfg.JWT.RefreshTTL},
		userRepo, tokenRepo, loginLimiter, jwtMgr)
	userUC := userUsecase.New(logger, userRepo)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:          cfg.Server.Host,
		Port:          cfg.Server.Port,
		Mode:          cfg.Server.Mode,
		AuthUC:        authUC,
		UserUC:        userUC,
		JWTManager:    jwtMgr,
		Policies:      policy.Default(),
		Cookie:        cfg.Cookie,
		CORS:          cfg.CORS,
		RefreshMaxAge: int(cfg.JWT.RefreshTTL.Seconds()),
		DB:            db,
		Redis:         redisClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "HTTP server stopped with error: ", err)
	}
}
