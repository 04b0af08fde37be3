package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates requests with a Bearer token. The token
// hash is checked against the redis auth cache so a revoked session stops
// working before the JWT itself expires; a cache miss falls back to plain
// signature validation.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
			// Refresh the cache TTL on use.
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
		} else if err != redis.Nil {
			zap.L().Warn("auth cache unavailable, accepting signed token", zap.Error(err))
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// ActorID returns the authenticated user id set by JWTAuthMiddleware.
func ActorID(c *gin.Context) string {
	return c.GetString("userID")
}
