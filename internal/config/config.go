package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Addr              string
	DbPath            string
	UploadDir         string
	BaseURL           string
	PublicDir         string
	PollSeconds       int
	AllowedOriginsRaw string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:            getEnv("APP_ENV", "local"),
		Addr:              getEnv("APP_ADDR", ":5000"),
		DbPath:            getEnv("DB_PATH", "./database.sqlite"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:5000"),
		PublicDir:         getEnv("PUBLIC_DIR", ""),
		PollSeconds:       getEnvInt("POLL_SECONDS", 5),
		AllowedOriginsRaw: getEnv("ALLOWED_ORIGINS", ""),
	}

	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return cfg, errors.New("BASE_URL must be an absolute URL")
	}
	if cfg.PollSeconds <= 0 {
		return cfg, errors.New("POLL_SECONDS must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
