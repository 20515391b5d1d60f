package jwtutil

import (
	"errors"
	"fmt"
	"time"

	"storefront-service/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

var jwtConfig *config.JWTConfig

// AdminClaims carries the authenticated admin identity. The storefront has a
// single admin account, so the claims stay minimal.
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Initialize sets up the JWT utility with configuration
func Initialize(cfg *config.JWTConfig) {
	jwtConfig = cfg
}

// GenerateToken creates a new JWT token for the admin user
func GenerateToken(email string) (string, error) {
	if jwtConfig == nil {
		return "", errors.New("JWT configuration not initialized")
	}

	signingKey := jwtConfig.SigningKey
	expirationHours := jwtConfig.ExpirationHours

	claims := &AdminClaims{
		Email: email,
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(signingKey))
}

// ValidateToken validates the token and returns the claims
func ValidateToken(tokenString string) (*AdminClaims, error) {
	if jwtConfig == nil {
		return nil, errors.New("JWT configuration not initialized")
	}

	signingKey := jwtConfig.SigningKey

	token, err := jwt.ParseWithClaims(
		tokenString,
		&AdminClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Validate the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(signingKey), nil
		},
	)

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
