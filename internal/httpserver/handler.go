package httpserver

import (
	authHTTP "digital-api/internal/auth/delivery/http"
	"digital-api/internal/middleware"
	userHTTP "digital-api/internal/user/delivery/http"
)

const Api = "/api"

func (srv *HTTPServer) mapHandlers() error {
	corsConfig := middleware.DefaultCORSConfig()
	if len(srv.corsCfg.AllowedOrigins) > 0 {
		corsConfig.AllowedOrigins = srv.corsCfg.AllowedOrigins
	}
	corsConfig.AllowCredentials = srv.corsCfg.AllowCredentials

	mw := middleware.New(srv.logger, srv.jwtMgr, srv.policies, srv.cookieCfg)

	srv.gin.Use(middleware.CORS(corsConfig))
	srv.gin.Use(middleware.Recovery(srv.logger))
	// The gate runs on every request; paths outside the policy table pass
	// through untouched.
	srv.gin.Use(mw.Gate())

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	api := srv.gin.Group(Api)

	authHandler := authHTTP.New(srv.logger, srv.authUC, srv.cookieCfg, srv.refreshMaxAge)
	authHandler.RegisterRoutes(api)

	userHandler := userHTTP.New(srv.logger, srv.userUC)
	userHandler.RegisterRoutes(api)

	return nil
}
