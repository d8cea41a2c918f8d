package config

import (
	"os"
	"strings"
)

// DefaultJWTSecret is the development fallback; deployments override it
// through JWT_SECRET.
const DefaultJWTSecret = "super-secret-key-change-me"

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string
	RedisAddr string

	DBUser string
	DBPass string
	DBHost string
	DBName string
}

func LoadEnv() Env {
	env := Env{
		AppAddr:   getenv("APP_ADDR", ":5000"),
		GinMode:   getenv("GIN_MODE", ""),
		JWTSecret: getenv("JWT_SECRET", DefaultJWTSecret),
		RedisAddr: getenv("REDIS_ADDR", ""),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    getenv("DB_PASS", ""),
		DBHost:    getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenv("DB_NAME", "bus_ticketing"),
	}
	return env
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
