package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	OpenAIKey   string
	SpecsDir    string
	ListenAddr  string
	MetricsPort string
}

func Load() *Config {
	// Carga .env desde la raíz del proyecto
	_ = godotenv.Load("../../.env")
	// Si no lo encuentra, intenta en el directorio actual
	_ = godotenv.Load()
	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		SpecsDir:    getEnv("SPECS_DIR", "./specs"),
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
