package middleware

import (
	"context"
	"strconv"
	"strings"

	"siteseekers-backend/internal/domain"
	"siteseekers-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Identity attaches the caller's user ID and type to the request context when
// a valid Bearer token is present. It never rejects: the API routes are
// public and the token is purely informational.
func Identity(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if sub, ok := claims["sub"].(string); ok {
			if id, err := strconv.ParseInt(sub, 10, 64); err == nil {
				ctx = context.WithValue(ctx, domain.KeyUserID, id)
			}
		}
		if userType, ok := claims["user_type"].(string); ok {
			ctx = context.WithValue(ctx, domain.KeyUserType, userType)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
