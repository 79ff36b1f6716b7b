package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSigningMethod = jwt.SigningMethodHS256

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is the bearer token issued by the identity provider.
type SessionClaims struct {
	Email string        `json:"email,omitempty"`
	Role  entities.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// MintToken signs a session token. Production tokens come from the identity
// provider; this exists for local tooling and tests.
func MintToken(cfg config.JWTConfig, now time.Time, ttl time.Duration, s entities.Session) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt secret is required")
	}
	claims := SessionClaims{
		Email: s.Email,
		Role:  s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseSession validates the token and rebuilds the caller's session. Unknown
// roles degrade to customer.
func ParseSession(cfg config.JWTConfig, tokenString string) (*entities.Session, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwtSigningMethod.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(
		strings.TrimSpace(tokenString),
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	role := claims.Role
	if role != entities.RoleAdmin {
		role = entities.RoleCustomer
	}
	return &entities.Session{UserID: claims.Subject, Email: claims.Email, Role: role}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}
