package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Profile store backends
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	OCRLanguages      []string
	MaxFileSize       int64
	CatalogPath       string
	ProfileStore      string
	SQLitePath        string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	MergePolicy       string
}

func LoadConfig() *Config {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	maxMB := getEnvInt("MAX_UPLOAD_MB", 10)

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		OCRLanguages:      splitList(getEnv("OCR_LANGUAGES", "eng,hin")),
		MaxFileSize:       int64(maxMB) * 1024 * 1024,
		CatalogPath:       os.Getenv("CATALOG_PATH"),
		ProfileStore:      strings.ToLower(getEnv("PROFILE_STORE", StoreSQLite)),
		SQLitePath:        getEnv("SQLITE_PATH", "data/profiles.db"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		MergePolicy:       getEnv("MERGE_POLICY", "prefer_existing"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
