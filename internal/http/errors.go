package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"movie-api/internal/service"
)

const (
	msgAuthFailed     = "Authentication failed."
	msgUserExists     = "User already exists."
	msgMovieNotFound  = "Movie not found."
	msgMissingFields  = "Missing required fields."
	msgInternalError  = "Internal server error."
	msgInvalidPayload = "Invalid request payload."
)

// fail is the single place service errors become HTTP responses. Internal
// causes are logged and never echoed to the client.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"success": false, "message": msgUserExists})
	case errors.Is(err, service.ErrUnauthenticated):
		h.logger.WithField("request_id", c.GetString(requestIDKey)).WithError(err).Warn("authentication failed")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": msgAuthFailed})
	case errors.Is(err, service.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": msgMovieNotFound})
	default:
		h.logger.WithField("request_id", c.GetString(requestIDKey)).WithError(err).Error("request error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternalError})
	}
}

// badRequest answers a body that failed to bind.
func (h *Handler) badRequest(c *gin.Context, err error) {
	resp := gin.H{"success": false, "message": msgInvalidPayload}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp["message"] = msgMissingFields
		resp["details"] = validationDetails(verrs)
	}
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		resp["details"] = map[string]string{ute.Field: "must be a " + ute.Type.String()}
	} else if errors.As(err, &se) {
		resp["details"] = map[string]string{"payload": "invalid json"}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

func isUnauthenticated(err error) bool {
	return errors.Is(err, service.ErrUnauthenticated)
}

func validationDetails(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch fe.Tag() {
		case "required":
			out[field] = "is required"
		case "min":
			out[field] = "must contain at least " + fe.Param() + " item(s)"
		default:
			out[field] = "failed " + fe.Tag() + " validation"
		}
	}
	return out
}

var validatorOnce sync.Once

// registerValidatorTags reports binding errors with json field names.
func registerValidatorTags() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
