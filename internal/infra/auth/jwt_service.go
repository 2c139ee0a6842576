package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"harvest/config"
	"harvest/internal/domain/service"
)

const accessTokenType = "access"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	issuer       string
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	ttl := 15 * time.Minute
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
		issuer:       cfg.Env.ServiceName,
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the user's roles.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles []string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature, expiry and type of an access token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Type != accessTokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.UserID == uuid.Nil {
		return nil, errors.New("token has no user id")
	}

	return claims, nil
}
