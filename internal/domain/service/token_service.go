package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for seller tokens. The seller ID is the
// registered subject.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// SellerID returns the subject of the token.
func (c *Claims) SellerID() string {
	return c.Subject
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateSellerToken issues a token for sellerID valid for ttl.
	GenerateSellerToken(sellerID string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
