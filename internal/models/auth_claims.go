package models

import "github.com/golang-jwt/jwt/v5"

// JwtCustomClaims are the claims embedded in access tokens.
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
