// Package config отвечает за загрузку конфигурации приложения
package config

import (
	"os"
	"strconv"
)

// Config содержит конфигурацию всего приложения
type Config struct {
	Server   ServerConfig
	Registry RegistryConfig
	Seed     SeedConfig
}

// ServerConfig содержит параметры HTTP-сервера
type ServerConfig struct {
	Addr string
}

// RegistryConfig содержит политику реестра спортсменов
type RegistryConfig struct {
	// CaseInsensitiveNames включает сравнение имён без учёта регистра
	// при проверке дубликатов, как в исходной настольной версии
	CaseInsensitiveNames bool
}

// SeedConfig управляет загрузкой демонстрационного набора спортсменов
type SeedConfig struct {
	Enabled bool
	// File — путь к YAML-файлу с набором; пусто — встроенный набор
	File string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Registry: RegistryConfig{
			CaseInsensitiveNames: getEnvBool("NAMES_CASE_INSENSITIVE", false),
		},
		Seed: SeedConfig{
			Enabled: getEnvBool("SEED_DEMO_DATA", true),
			File:    getEnv("SEED_FILE", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}
