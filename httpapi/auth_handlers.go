package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/auth"
	"jobboard/user"
)

// AuthHandler owns the session cookie lifecycle.
type AuthHandler struct {
	tokens       *auth.Service
	cookieSecure bool
}

// IssueToken is POST /jwt. Identity is established client-side by the
// social-auth provider; this route only converts the asserted email into a
// signed session cookie. There is no password check here.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}

	token, err := h.tokens.IssueToken(req.Email)
	if err != nil {
		internalError(c, "issue token", err)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(auth.CookieName, token, int(auth.TokenTTL.Seconds()), "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout is POST /logout. Stateless tokens cannot be revoked; clearing the
// cookie is all logout does.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// roleSource adapts the user service to the middleware's role lookup.
type roleSource struct {
	users *user.Service
}

func (r roleSource) RoleByEmail(ctx context.Context, email string) (string, error) {
	u, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", auth.ErrUnknownUser
		}
		return "", err
	}
	return u.Role, nil
}
