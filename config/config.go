package config

import "os"

type Config struct {
	Port        string
	DatabaseURL string // Postgres DSN; when set it wins over SQLitePath
	SQLitePath  string
	ImagesDir   string
}

func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "products.db"),
		ImagesDir:   getEnv("IMAGES_DIR", "imgs"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
