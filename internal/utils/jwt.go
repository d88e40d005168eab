package utils

import (
	"errors"
	"strconv"
	"time"

	"digiwallet/internal/config"
	"digiwallet/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "digital-wallet"

var (
	ErrSecretNotConfigured = errors.New("JWT secret not configured")
	ErrInvalidClaims       = errors.New("invalid token claims")
)

// GenerateTokens signs an access token and a refresh token for the customer.
func GenerateTokens(cfg config.JWTConfig, customer *models.Customer) (accessToken string, refreshToken string, err error) {
	if cfg.Secret == "" {
		return "", "", ErrSecretNotConfigured
	}

	now := time.Now()
	accessToken, err = sign(cfg.Secret, newClaims(customer, models.TokenTypeAccess, now, cfg.AccessTTL))
	if err != nil {
		return "", "", err
	}
	refreshToken, err = sign(cfg.Secret, newClaims(customer, models.TokenTypeRefresh, now, cfg.RefreshTTL))
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ParseToken parses and validates a JWT token string of the expected type.
func ParseToken(cfg config.JWTConfig, tokenStr, tokenType string) (*models.CustomerClaims, error) {
	if cfg.Secret == "" {
		return nil, ErrSecretNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.CustomerClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.CustomerClaims)
	if !ok || !token.Valid || claims.TokenType != tokenType {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

func newClaims(customer *models.Customer, tokenType string, now time.Time, ttl time.Duration) models.CustomerClaims {
	return models.CustomerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(customer.ID), 10),
		},
		CustomerID:   customer.ID,
		Email:        customer.Email,
		Role:         customer.Role,
		TokenVersion: customer.TokenVersion,
		TokenType:    tokenType,
	}
}

func sign(secret string, claims models.CustomerClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
