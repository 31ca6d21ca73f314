package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mkamara9/herdsman/internal/apperr"
	"github.com/mkamara9/herdsman/internal/session"
)

const sessionKey = "herdsman.session"

// SessionMiddleware builds the explicit session for the request from the
// app-supplied headers: the bearer token, the active farm
// (X-Active-Farm: id, optionally "id;name"), and the signed-in user
// (X-User: JSON). Requests without a token are rejected up front.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrNoSession.Error()})
			return
		}

		sess := session.Session{Token: token}

		if farm := c.GetHeader("X-Active-Farm"); farm != "" {
			id, name, _ := strings.Cut(farm, ";")
			sess.Farm = session.Farm{ID: id, Name: name}
		}

		if rawUser := c.GetHeader("X-User"); rawUser != "" {
			// A malformed user header only costs the administrator default.
			_ = json.Unmarshal([]byte(rawUser), &sess.User)
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) session.Session {
	value, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}
	}
	sess, _ := value.(session.Session)
	return sess
}

// respondError translates the uniform service error into an HTTP response,
// preserving the mapped user-facing message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrNoSession.Error()})
		return
	case errors.Is(err, apperr.ErrNoActiveFarm):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.ErrNoActiveFarm.Error()})
		return
	}

	var validation *apperr.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "fields": validation.Fields})
		return
	}

	var upstream *apperr.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(upstream.StatusCode, gin.H{"error": upstream.Message})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
