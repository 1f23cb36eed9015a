package jwt

import (
	"time"

	customErrors "github.com/pocketmint/auth-service/internal/domain/auth/errors"
	jwt2 "github.com/pocketmint/auth-service/internal/domain/auth/jwt"
	"github.com/pocketmint/auth-service/internal/infra/config"

	"github.com/golang-jwt/jwt/v5"
)

type JwtUtilImpl struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewJWTUtil(cfg *config.Config) (*JwtUtilImpl, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, customErrors.NewInvalidArgument("signing secrets must be set")
	}

	return &JwtUtilImpl{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
	}, nil
}

func (j *JwtUtilImpl) GenerateAccessToken(email string) (string, error) {
	return j.sign(email, j.accessSecret, j.accessTTL)
}

func (j *JwtUtilImpl) GenerateRefreshToken(email string) (string, error) {
	return j.sign(email, j.refreshSecret, j.refreshTTL)
}

func (j *JwtUtilImpl) sign(email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt2.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", customErrors.WrapInternal(err, "sign token")
	}

	return signed, nil
}

func (j *JwtUtilImpl) ValidateAccessToken(raw string) (jwt2.Claims, error) {
	return j.validate(raw, j.accessSecret)
}

func (j *JwtUtilImpl) ValidateRefreshToken(raw string) (jwt2.Claims, error) {
	return j.validate(raw, j.refreshSecret)
}

func (j *JwtUtilImpl) validate(raw string, secret []byte) (jwt2.Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt2.Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return secret, nil
	}, jwt.WithIssuedAt())

	if err != nil || !token.Valid {
		return jwt2.Claims{}, customErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt2.Claims)
	if !ok {
		return jwt2.Claims{}, customErrors.ErrInvalidToken
	}

	return *claims, nil
}
