package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims extends the registered JWT claims with the fields the
// API needs to scope requests. TokenType distinguishes access tokens
// from refresh tokens so one can never stand in for the other.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
