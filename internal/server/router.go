package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/pkg/response"
)

// RouterConfig collects what the HTTP surface needs.
type RouterConfig struct {
	Activities         *activities.Handler
	Logger             *zap.Logger
	CORSAllowedOrigins string
	StaticDir          string // empty disables /static
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.StaticDir != "" {
		router.Static("/static", cfg.StaticDir)
	}

	router.GET("/", cfg.Activities.Root)
	router.GET("/activities", cfg.Activities.List)
	router.POST("/activities/:name/signup", cfg.Activities.Signup)
	router.DELETE("/activities/:name/unregister", cfg.Activities.Unregister)

	return router
}
