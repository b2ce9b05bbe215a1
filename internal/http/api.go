package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"socialhub/internal/monitoring"
	"socialhub/internal/service"
)

// TokenVerifier validates bearer tokens and returns the user id they carry.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	posts    service.PostService
	comments service.CommentService
	follows  service.FollowService
	tokens   TokenVerifier
	logger   *logrus.Logger
}

func NewHandler(
	users service.UserService,
	posts service.PostService,
	comments service.CommentService,
	follows service.FollowService,
	tokens TokenVerifier,
	logger *logrus.Logger,
) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		users:    users,
		posts:    posts,
		comments: comments,
		follows:  follows,
		tokens:   tokens,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(), requestLogger(h.logger), monitoring.Middleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	authed := api.Group("", h.requireAuth())
	{
		authed.GET("/current", h.current)
		authed.GET("/users/:id", h.getUser)
		authed.PUT("/users/:id", h.updateUser)

		authed.POST("/posts", h.createPost)
		authed.GET("/posts", h.listPosts)
		authed.GET("/posts/:id", h.getPost)
		authed.DELETE("/posts/:id", h.deletePost)

		authed.POST("/comments", h.createComment)
		authed.DELETE("/comments/:id", h.deleteComment)

		authed.POST("/follow", h.follow)
		authed.DELETE("/unfollow/:id", h.unfollow)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
