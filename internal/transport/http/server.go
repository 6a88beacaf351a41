package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chatterbox-im/chatterbox-server/internal/auth"
	"github.com/chatterbox-im/chatterbox-server/internal/config"
	"github.com/chatterbox-im/chatterbox-server/internal/core"
)

// NewServer builds the HTTP server: REST auth endpoints, the gated data
// read, and the WebSocket event endpoint.
func NewServer(handlers *core.Handlers, hub *core.Hub, authService *auth.Service, store *core.Store, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	api := NewAPIHandlers(authService, store, logger)
	router.POST("/api/v1/login", api.Login)
	router.POST("/api/v1/signup", api.Signup)

	authorized := router.Group("/api/v1", AuthMiddleware(authService, logger))
	authorized.GET("/data", api.Data)

	router.GET("/health", func(c *gin.Context) {
		c.String(stdhttp.StatusOK, "ok")
	})
	router.GET("/ws", gin.WrapH(NewWSHandler(handlers, hub, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
