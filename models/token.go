package models

import "github.com/golang-jwt/jwt/v5"

// Token is a session bearer token issued by the authentication system.
// The subject claim carries the opaque user identifier.
type Token struct {
	jwt.RegisteredClaims

	Token        *jwt.Token `json:"-"`
	SignedString string     `json:"-"`
	UserID       string     `json:"-"`
}
