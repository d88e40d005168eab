package models

import "github.com/golang-jwt/jwt/v5"

// Token types
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type CustomerClaims struct {
	jwt.RegisteredClaims
	CustomerID   uint   `json:"customer_id"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	TokenVersion int    `json:"token_version"`
	TokenType    string `json:"token_type"`
}
