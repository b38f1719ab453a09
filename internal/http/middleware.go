package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"movie-api/internal/auth"
	"movie-api/internal/domain"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()

		entry := h.logger.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		})
		if user, ok := auth.UserFromContext(c.Request.Context()); ok {
			entry = entry.WithField("user_id", user.ID)
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		default:
			entry.Info("request handled")
		}
	}
}

// authenticate admits a request only when it carries a valid token for a
// user that still exists. Every rejection gets the same 401 response.
func (h *Handler) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"), h.scheme)
		if !ok {
			h.reject(c, "missing or malformed authorization header", nil)
			return
		}

		claims, err := h.tokens.Verify(raw)
		if err != nil {
			fields := logrus.Fields{}
			var te *auth.TokenError
			if errors.As(err, &te) {
				fields["reason"] = te.Reason
			}
			h.reject(c, "token rejected", fields)
			return
		}

		user, err := h.users.Identify(c.Request.Context(), claims.ID)
		if err != nil {
			if !isUnauthenticated(err) {
				h.fail(c, err)
				return
			}
			h.reject(c, "token subject not found", logrus.Fields{"user_id": claims.ID})
			return
		}

		c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

func (h *Handler) reject(c *gin.Context, msg string, fields logrus.Fields) {
	h.logger.WithField("request_id", c.GetString(requestIDKey)).WithFields(fields).Warn(msg)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized."})
}

func bearerToken(header, scheme string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != scheme {
		return "", false
	}
	return parts[1], true
}

// currentUser returns the identity attached by authenticate.
func currentUser(c *gin.Context) *domain.User {
	user, _ := auth.UserFromContext(c.Request.Context())
	return user
}
