package middleware

import (
	"net/http"
	"strings"

	"Tieba_Community/internal/pkg"
	"Tieba_Community/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// AuthMiddleware requires a valid access token that still matches the live
// session in redis, and slides the session TTL on every hit.
func AuthMiddleware() gin.HandlerFunc {
	sessions := &redis.SessionRepository{}

	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "missing or malformed authorization header"})
			return
		}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			return
		}

		live, err := sessions.Get(c.Request.Context(), claims.UserID)
		if err != nil || live != tokenStr {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "session expired"})
			return
		}
		_ = sessions.Extend(c.Request.Context(), claims.UserID)

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuthMiddleware sets the caller id when a valid token is present
// and otherwise lets the request through anonymously. Read endpoints use it
// so liked-by-me enrichment works for logged-in callers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := bearerToken(c); ok {
			if claims, err := pkg.ParseAccess(tokenStr); err == nil {
				c.Set(ContextUserIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}

// CallerID returns the authenticated caller or 0 for anonymous requests.
func CallerID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
