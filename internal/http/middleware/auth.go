// README: Bearer-token auth middleware backed by an injectable verifier.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"flanvo/internal/infra"
)

const (
	// ContextUserID is the gin context key holding the verified user id.
	ContextUserID = "user_id"
	// ContextEmail is the gin context key holding the verified email, if any.
	ContextEmail = "email"
)

// Auth verifies the Authorization bearer token and attaches the caller's
// identity to the context. Requests without a valid token get 401.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" || raw == c.GetHeader("Authorization") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tok, err := verifier.VerifyToken(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ContextUserID, tok.UserID)
		c.Set(ContextEmail, tok.Email)
		c.Next()
	}
}
