package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	currentEnv   Env
	currentEnvMu sync.RWMutex
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBUser    string
	DBPass    string
	DBHost    string
	DBName    string
	JWTSecret string
	ExportDir string
}

// LoadEnv reads configuration from the environment, with defaults that
// match a local dev setup.
func LoadEnv() Env {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_HOST", "127.0.0.1:3306")
	v.SetDefault("DB_NAME", "despacho")
	v.SetDefault("JWT_SECRET", "cambia-esta-clave")
	v.SetDefault("EXPORT_DIR", "exports")

	env := Env{
		AppAddr:   strings.TrimSpace(v.GetString("APP_ADDR")),
		GinMode:   strings.TrimSpace(v.GetString("GIN_MODE")),
		DBUser:    v.GetString("DB_USER"),
		DBPass:    v.GetString("DB_PASS"),
		DBHost:    v.GetString("DB_HOST"),
		DBName:    v.GetString("DB_NAME"),
		JWTSecret: v.GetString("JWT_SECRET"),
		ExportDir: v.GetString("EXPORT_DIR"),
	}

	currentEnvMu.Lock()
	currentEnv = env
	currentEnvMu.Unlock()

	return env
}

// CurrentEnv returns the configuration loaded at startup.
func CurrentEnv() Env {
	currentEnvMu.RLock()
	defer currentEnvMu.RUnlock()
	return currentEnv
}
