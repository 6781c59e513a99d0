// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"rewards/config"
	"rewards/internal/domain/service"
)

const issuer = "rewards"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are minted by the identity service; this side only needs to validate them.
type jwtService struct {
	accessSecret string
}

// tokenClaims is the wire shape of an access token.
type tokenClaims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}
	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// GenerateAccessToken signs an HS256 access token carrying the user's roles.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Roles: roles,
		Type:  "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

// ValidateToken checks signature, expiry and token type, and returns the caller identity.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.accessSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if claims.Type != "access" {
		return nil, errors.New("token is not an access token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.New("token subject is not a user id")
	}

	return &service.Claims{
		UserID:           userID,
		Roles:            claims.Roles,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
