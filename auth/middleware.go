package auth

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrUnknownUser is returned by RoleSource implementations when no record
// exists for the email.
var ErrUnknownUser = errors.New("auth: unknown user")

// RoleSource resolves the stored role for a verified email.
type RoleSource interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireToken reads the session cookie, verifies it and attaches the claim
// email to the request context. A missing or invalid token ends the request
// with 401; nothing downstream runs without verified claims.
func RequireToken(tokens *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := tokens.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ContextKeyEmail, claims.Email)
		c.Next()
	}
}

// RequireSelf rejects requests whose email query parameter differs from the
// verified claim email. The token itself may be perfectly valid: the check
// stops an authenticated caller reading another user's private resources by
// substituting a different email. Must run after RequireToken.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("email") != c.GetString(ContextKeyEmail) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// RequireRole looks up the caller's stored role and rejects with 403 unless
// it matches exactly. A missing user record is a 403 as well, never a crash.
// Must run after RequireToken.
func RequireRole(roles RoleSource, required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextKeyEmail)

		role, err := roles.RoleByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, ErrUnknownUser) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
			log.Printf("auth: role lookup for %s: %v", email, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
