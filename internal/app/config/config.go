// Package config はHTTPサーバーの起動設定を環境変数から読み込みます。
package config

import (
	"net"
	"os"
	"strconv"
)

// ServerConfig はHTTPサーバーの待ち受け設定と起動時の振る舞いを保持します。
type ServerConfig struct {
	Host                 string
	Port                 string
	GinMode              string
	SeedDefaultFavorites bool
}

// Load は環境変数から ServerConfig を生成します。
func Load() ServerConfig {
	return ServerConfig{
		Host:                 getEnvWithDefault("HOST", "0.0.0.0"),
		Port:                 getEnvWithDefault("PORT", "5000"),
		GinMode:              os.Getenv("GIN_MODE"),
		SeedDefaultFavorites: getBoolWithDefault("SEED_DEFAULT_FAVORITES", true),
	}
}

// Addr は net/http に渡す host:port を返します。
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnvWithDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getBoolWithDefault(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}
