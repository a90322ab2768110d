package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings for both binaries
type Config struct {
	ListenAddr   string
	CorpusDir    string
	OpenAIAPIKey string
	OpenAIModel  string
	LogLevel     string
}

// Load reads configuration from the environment, with an optional .env file
// for local runs. Every setting has a usable default except the OpenAI key,
// which is simply absent when unset (chat stays disabled).
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr:   getenv("LISTEN_ADDR", ":8080"),
		CorpusDir:    getenv("CORPUS_DIR", "data"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getenv("OPENAI_MODEL", ""),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
