package auth

import (
	"errors"
	"time"

	"github.com/deep314313/unnativ-backend/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the single token shape shared by athletes, organizations and
// donors. Kind is one of domain.KindAthlete / KindOrganization / KindDonor.
type Claims struct {
	PrincipalID uint   `json:"principal_id"`
	Kind        string `json:"kind"`
	jwt.RegisteredClaims
}

// ErrInvalidToken is returned for malformed, tampered and expired tokens
// alike; callers must not be able to tell the cases apart.
var ErrInvalidToken = errors.New("invalid token")

// GenerateToken issues a signed token for the given principal, valid for
// cfg.Expiry (24h by default) from now.
func GenerateToken(cfg *config.JWTConfig, principalID uint, kind string) (string, error) {
	now := time.Now()
	claims := Claims{
		PrincipalID: principalID,
		Kind:        kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(cfg *config.JWTConfig, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
