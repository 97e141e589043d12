package jwt

import "github.com/golang-jwt/jwt/v5"

// ArenaClaims are the token claims the arena API trusts.
type ArenaClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Role gates access to the administrative operations.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)
