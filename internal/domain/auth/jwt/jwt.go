package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of both token classes: the registered set plus the
// user's email, which is the only identity the service embeds.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTUtil signs and verifies the two token classes. Access and refresh tokens
// are signed with independent secrets so one class can never be verified
// against the other's key.
type JWTUtil interface {
	GenerateAccessToken(email string) (token string, err error)
	GenerateRefreshToken(email string) (token string, err error)
	ValidateAccessToken(raw string) (Claims, error)
	ValidateRefreshToken(raw string) (Claims, error)
}
