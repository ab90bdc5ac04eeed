package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dkovalev/news-api/pkg/helpers"
)

const identityKey = "userID"

// OptionalIdentity resolves the author of a request from an optional
// Authorization bearer token. Requests without a token, or with one that
// does not parse, pass through anonymously; this service has no login flow
// and never rejects on auth grounds.
func OptionalIdentity(tm *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if ok && tm != nil {
			if claims, err := tm.ParseToken(strings.TrimSpace(token)); err == nil && claims.UserID > 0 {
				c.Set(identityKey, claims.UserID)
			}
		}
		c.Next()
	}
}

// IdentityFromContext returns the resolved user id, or nil for anonymous
// requests.
func IdentityFromContext(c *gin.Context) *int64 {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, ok := v.(int64)
	if !ok {
		return nil
	}
	return &id
}
