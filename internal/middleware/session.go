package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/session"
)

// Session resolves the :id route parameter against the store and attaches the
// session to the request context. Session-scoped handlers can then assume it
// is present.
func Session(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing session id"})
			c.Abort()
			return
		}

		sess, ok := store.Find(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			c.Abort()
			return
		}

		c.Set(session.ContextKey, sess)
		c.Next()
	}
}
