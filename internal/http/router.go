package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookmarks/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.InFlight())
	}

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
		router.Use(cfg.SessionManager.EnsureSessionID())
	}

	checks := make(map[string]Pinger)
	if cfg.Database != nil {
		checks["database"] = cfg.Database
	}
	if cfg.TaskClient != nil {
		checks["tasks"] = cfg.TaskClient
	}
	health := NewHealthController(cfg.Version, checks, cfg.Maintenance)
	router.GET("/health", health.Status)

	if cfg.Metrics != nil {
		router.GET("/metrics", cfg.Metrics.Handler())
	}

	procedures := cfg.Procedures
	if procedures == nil {
		procedures = NewProcedures()
	}
	base := cfg.Context
	if base.Version == "" {
		base.Version = cfg.Version
	}
	rpcController := NewRPCController(procedures, base, cfg.CallTimeout, cfg.Metrics)

	rpcGroup := router.Group("/rpc")
	if cfg.RateLimiter != nil {
		rpcGroup.Use(cfg.RateLimiter.Middleware())
	}
	rpcGroup.GET("/:procedure", rpcController.Query)
	rpcGroup.POST("/:procedure", rpcController.Mutation)

	// Task queue endpoints (only when the task queue is enabled)
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		router.GET("/api/tasks/types", tasksController.ListTaskTypes)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
		router.POST("/api/tasks/:type/run", tasksController.RunTask)
	}

	return router
}
