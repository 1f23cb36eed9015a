package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL     string
	RedisAddress    string
	RedisPassword   string
	RedisDB         int
	AccessSecret    string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	HTTPAddress     string
	AllowedOrigins  []string
	LogLevel        string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	for _, key := range []string{
		"DATABASE_URL",
		"REDIS_ADDRESS",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"JWT_ACCESS_SECRET",
		"JWT_REFRESH_SECRET",
		"ACCESS_TOKEN_TTL",
		"REFRESH_TOKEN_TTL",
		"HTTP_ADDRESS",
		"ALLOWED_ORIGINS",
		"LOG_LEVEL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("ACCESS_TOKEN_TTL", time.Minute)
	v.SetDefault("REFRESH_TOKEN_TTL", 7*24*time.Hour)
	v.SetDefault("HTTP_ADDRESS", ":2510")

	cfg := &Config{
		DatabaseURL:     v.GetString("DATABASE_URL"),
		RedisAddress:    v.GetString("REDIS_ADDRESS"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		AccessSecret:    v.GetString("JWT_ACCESS_SECRET"),
		RefreshSecret:   v.GetString("JWT_REFRESH_SECRET"),
		AccessTokenTTL:  v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL: v.GetDuration("REFRESH_TOKEN_TTL"),
		HTTPAddress:     v.GetString("HTTP_ADDRESS"),
		AllowedOrigins:  v.GetStringSlice("ALLOWED_ORIGINS"),
		LogLevel:        v.GetString("LOG_LEVEL"),
	}

	for key, val := range map[string]string{
		"DATABASE_URL":       cfg.DatabaseURL,
		"JWT_ACCESS_SECRET":  cfg.AccessSecret,
		"JWT_REFRESH_SECRET": cfg.RefreshSecret,
	} {
		if val == "" {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	return cfg, nil
}
