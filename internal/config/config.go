// Package config は環境変数からサーバー設定を読み込みます。
package config

import (
	"net"
	"os"
)

const DefaultPort = "3000"

type Config struct {
	Port string
}

// Load は環境変数PORTを読み込みます。未設定または空なら DefaultPort を使います。
func Load() Config {
	return Config{
		Port: GetEnvDefault("PORT", DefaultPort),
	}
}

// Addr は全インターフェースで待ち受けるアドレスを返します。
func (c Config) Addr() string {
	return net.JoinHostPort("", c.Port)
}

func GetEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
