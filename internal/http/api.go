package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"movie-api/internal/auth"
	"movie-api/internal/service"
)

// TokenVerifier is satisfied by *auth.Tokens.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// Config carries the Handler dependencies.
type Config struct {
	Users  service.UserService
	Movies service.MovieService
	Tokens TokenVerifier
	// Scheme is the Authorization header label. Sign in emits tokens with
	// the same label.
	Scheme string
	Logger *logrus.Logger
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	movies service.MovieService
	tokens TokenVerifier
	scheme string
	logger *logrus.Logger
}

func NewHandler(cfg Config) *Handler {
	if cfg.Scheme == "" {
		cfg.Scheme = "JWT"
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	registerValidatorTags()
	return &Handler{
		users:  cfg.Users,
		movies: cfg.Movies,
		tokens: cfg.Tokens,
		scheme: cfg.Scheme,
		logger: cfg.Logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.requestLogger())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", requestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/signup", h.signup)
	router.POST("/signin", h.signin)

	movies := router.Group("/movies", h.authenticate())
	{
		movies.GET("", h.listMovies)
		movies.POST("", h.createMovie)
		movies.GET("/:title", h.getMovie)
		movies.PUT("/:title", h.updateMovie)
		movies.DELETE("/:title", h.deleteMovie)
	}
}
