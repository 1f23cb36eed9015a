package jwt

import (
	"testing"
	"time"

	"github.com/pocketmint/auth-service/internal/infra/config"

	"github.com/golang-jwt/jwt/v5"
)

func testConfig() *config.Config {
	return &config.Config{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
}

func TestJWTUtil_GenerateValidate(t *testing.T) {
	util, err := NewJWTUtil(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	token, err := util.GenerateAccessToken("a@b.com")
	if err != nil || token == "" {
		t.Fatalf("bad generate: %v", err)
	}
	claims, err := util.ValidateAccessToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("want a@b.com got %s", claims.Email)
	}
}

func TestJWTUtil_RefreshCycle(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	rTok, err := util.GenerateRefreshToken("a@b.com")
	if err != nil || rTok == "" {
		t.Fatalf("bad generate: %v", err)
	}
	cl, err := util.ValidateRefreshToken(rTok)
	if err != nil || cl.Email != "a@b.com" {
		t.Fatalf("validate error: %v", err)
	}
}

func TestJWTUtil_SecretsAreIndependent(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	// access token is never valid as a refresh token and vice versa
	aTok, _ := util.GenerateAccessToken("a@b.com")
	if _, err := util.ValidateRefreshToken(aTok); err == nil {
		t.Fatal("access token accepted as refresh token")
	}
	rTok, _ := util.GenerateRefreshToken("a@b.com")
	if _, err := util.ValidateAccessToken(rTok); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
}

func TestJWTUtil_ValidateErrors(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	if _, err := util.ValidateAccessToken("bad"); err == nil {
		t.Fatal("expected error")
	}
	// token signed with another secret
	other, _ := NewJWTUtil(&config.Config{
		AccessSecret:    "other-secret",
		RefreshSecret:   "other-refresh",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	tok, _ := other.GenerateAccessToken("a@b.com")
	if _, err := util.ValidateAccessToken(tok); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestJWTUtil_Expired(t *testing.T) {
	expired, _ := NewJWTUtil(&config.Config{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessTokenTTL:  -time.Minute,
		RefreshTokenTTL: -time.Minute,
	})
	util, _ := NewJWTUtil(testConfig())

	aTok, _ := expired.GenerateAccessToken("a@b.com")
	if _, err := util.ValidateAccessToken(aTok); err == nil {
		t.Fatal("expected expiry error")
	}
	rTok, _ := expired.GenerateRefreshToken("a@b.com")
	if _, err := util.ValidateRefreshToken(rTok); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestJWTUtil_InvalidAlg(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	token, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "a@b.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := util.ValidateAccessToken(token); err == nil {
		t.Fatal("expected invalid alg")
	}
}

func TestJWTUtil_MissingSecrets(t *testing.T) {
	if _, err := NewJWTUtil(&config.Config{}); err == nil {
		t.Fatal("expected error for missing secrets")
	}
}
