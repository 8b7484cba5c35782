package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/grandhotel/restaurant-pos/sessions"
	"github.com/grandhotel/restaurant-pos/utils"
)

// SessionAuth guards admin endpoints: the bearer token in the Authorization
// header must be a live session.
func SessionAuth(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if !store.Validate(token) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired session"))
			c.Abort()
			return
		}

		c.Next()
	}
}
