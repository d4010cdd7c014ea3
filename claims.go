package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the decoded content of the persisted credential. The codec
// never verifies signatures: the token is treated as an opaque hint about who
// was logged in, the server remains the authority on every call.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	UserRole  Role   `json:"role,omitempty"`
	UID       string `json:"userID,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// UserID returns the account id, falling back to the subject claim
func (c *TokenClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.RegisteredClaims.Subject
}

// Role returns the role claim
func (c *TokenClaims) Role() Role {
	return c.UserRole
}

// Expires returns the expiry timestamp, zero when the claim is absent
func (c *TokenClaims) Expires() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Issued returns the issued-at timestamp, zero when the claim is absent
func (c *TokenClaims) Issued() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// DecodeToken parses a raw credential into typed claims. An empty or
// structurally invalid token yields nil, never an error: a missing session is
// a normal condition, not a failure.
func DecodeToken(raw string) *TokenClaims {
	if raw == "" {
		return nil
	}

	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil
	}

	return claims
}
