package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"atelier-catalog/internal/ratelimit"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware gates one operation class behind the shared limiter.
// The client key comes from the forwarded-address header; requests without
// one share the anonymous bucket.
func RateLimitMiddleware(limiter *ratelimit.Limiter, class ratelimit.Class) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := limiter.Allow(class, clientKey(c))
		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse(
				apierrors.ErrRateLimited.Error(), apierrors.Code(apierrors.ErrRateLimited)))
			c.Abort()
			return
		}

		c.Next()
	}
}

func clientKey(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded == "" {
		return "anonymous"
	}
	// First address in the chain is the originating client.
	if i := strings.IndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[:i]
	}
	return strings.TrimSpace(forwarded)
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *ratelimit.Result) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
