package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"washhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	authCachePrefix = "auth:partner:"
	authCacheTTL    = 15 * time.Minute
)

// JWTAuthPartnerMiddleware validates the partner's bearer token. Token
// issuance lives in the identity service; this console only verifies the
// signature, extracts the partner ID, and caches validated token hashes in
// Redis with a sliding TTL so repeated requests skip the parse.
func JWTAuthPartnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + computedHash

		// Check the authorization cache.
		authCache := utils.GetAuthCacheClient()
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			// Refresh TTL (sliding expiration) and proceed.
			if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
				logger.Error("Failed to refresh auth cache TTL", zap.Error(err))
			}
			c.Set("partnerID", cached)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			logger.Error("Error checking auth cache", zap.Error(err))
		}

		// Cache miss: validate the token and extract the partner ID.
		partnerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || partnerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Successful validation: cache the token hash against the partner ID.
		if err := authCache.Set(ctx, cacheKey, partnerID, authCacheTTL).Err(); err != nil {
			logger.Error("Failed to set auth cache", zap.Error(err))
		}

		c.Set("partnerID", partnerID)
		c.Next()
	}
}
