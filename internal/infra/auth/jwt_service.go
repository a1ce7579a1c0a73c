// Package auth issues and validates seller access tokens.
package auth

import (
	"strings"
	"time"

	"lowkey/config"
	"lowkey/internal/domain/entity"
	"lowkey/internal/domain/service"
	"lowkey/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "lowkey"

// ErrInvalidToken is returned for tokens that are malformed, expired,
// wrongly signed or missing a subject.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		now:    time.Now,
	}, nil
}

// GenerateSellerToken signs a token whose subject is sellerID and whose only role is seller.
func (s *jwtService) GenerateSellerToken(sellerID string, ttl time.Duration) (string, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return "", errors.New("seller id is required")
	}
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	now := s.now()
	claims := service.Claims{
		Roles: entity.Roles{entity.RoleSeller}.ToStrings(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sellerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken parses tokenString and checks signature, expiry, issuer and subject.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if claims.Subject == "" {
		return nil, errors.Wrap(ErrInvalidToken, "subject is missing")
	}

	return claims, nil
}

// HasRole reports whether the claims grant role.
func HasRole(claims *service.Claims, role entity.Role) bool {
	return claims != nil && entity.RolesFromStrings(claims.Roles).Contains(role)
}
