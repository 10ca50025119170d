// Package authenticator wraps the optional single sign-on login.
package authenticator

import (
	"context"
	"strings"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

// Username picks the claim matched against the users worksheet:
// preferred_username, then email. Empty when neither is present.
func (c Claims) Username() string {
	for _, key := range []string{"preferred_username", "email"} {
		if v, ok := c[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// DisplayName returns the name claim, if any.
func (c Claims) DisplayName() string {
	if v, ok := c["name"].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
