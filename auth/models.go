package auth

import "github.com/golang-jwt/jwt/v5"

// CookieName is the session cookie carrying the signed token.
const CookieName = "session_token"

// ContextKeyEmail is the gin context key holding the verified claim email
// after RequireToken has run.
const ContextKeyEmail = "auth_email"

// Claims is the identity assertion embedded in a session token. Email is the
// only custom claim; everything else rides on the registered set.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
