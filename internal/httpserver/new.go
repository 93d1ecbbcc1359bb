package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"digital-api/config"
	"digital-api/internal/auth"
	"digital-api/internal/policy"
	"digital-api/internal/user"
	pkgJWT "digital-api/pkg/jwt"
	"digital-api/pkg/log"
	pkgRedis "digital-api/pkg/redis"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them; Run() (in
// httpserver.go) starts serving.
type HTTPServer struct {
	// Server configuration
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int

	// Domain use cases
	authUC auth.UseCase
	userUC user.UseCase

	// Auth & security
	jwtMgr    pkgJWT.Manager
	policies  policy.Table
	cookieCfg config.CookieConfig
	corsCfg   config.CORSConfig
	// refreshMaxAge is the refresh cookie lifetime in seconds.
	refreshMaxAge int

	// External services
	db    *sql.DB
	redis pkgRedis.IRedis
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host string
	Port int
	Mode string

	// Domain use cases
	AuthUC auth.UseCase
	UserUC user.UseCase

	// Auth & security
	JWTManager    pkgJWT.Manager
	Policies      policy.Table
	Cookie        config.CookieConfig
	CORS          config.CORSConfig
	RefreshMaxAge int

	// External services
	DB    *sql.DB
	Redis pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:           gin.New(),
		logger:        logger,
		host:          cfg.Host,
		port:          cfg.Port,
		authUC:        cfg.AuthUC,
		userUC:        cfg.UserUC,
		jwtMgr:        cfg.JWTManager,
		policies:      cfg.Policies,
		cookieCfg:     cfg.Cookie,
		corsCfg:       cfg.CORS,
		refreshMaxAge: cfg.RefreshMaxAge,
		db:            cfg.DB,
		redis:         cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authUC == nil {
		return errors.New("auth use case is required")
	}
	if srv.userUC == nil {
		return errors.New("user use case is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}
	if srv.redis == nil {
		return errors.New("Redis client is required")
	}
	if srv.db == nil {
		return errors.New("database handle is required")
	}

	return nil
}
