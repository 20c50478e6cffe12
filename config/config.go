package config

import (
	"os"
	"strconv"
)

// Config holds the runtime settings of the server, all overridable through
// environment variables.
type Config struct {
	Port        string
	GinMode     string
	DraftFile   string
	SeedProfile string
	LogLevel    string
	PrettyLog   bool
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		DraftFile:   getEnv("DRAFT_FILE", "data/guideline_draft.json"),
		SeedProfile: getEnv("SEED_PROFILE", "default"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		PrettyLog:   getEnvBool("PRETTY_LOG", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
