package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	PostgresDSN    string
	MongoURI       string
	MongoDB        string
	RedisAddr      string
	RedisPassword  string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	// External generator. Leaving the API key empty disables the external
	// path; every report is then synthesized locally.
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string
	GenerateTimeout time.Duration

	CacheTTL          time.Duration
	RequestsPerMinute int

	StaticDir string
}

func Load() *Config {
	return &Config{
		Port:              getenv("PORT", "8080"),
		PostgresDSN:       getenv("POSTGRES_DSN", ""),
		MongoURI:          getenv("MONGO_URI", ""),
		MongoDB:           getenv("MONGO_DB", "research_assistant"),
		RedisAddr:         getenv("REDIS_ADDR", ""),
		RedisPassword:     getenv("REDIS_PASSWORD", ""),
		MinioEndpoint:     getenv("MINIO_ENDPOINT", ""),
		MinioAccessKey:    getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:    getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:       getenv("MINIO_BUCKET", "research-exports"),
		MinioUseSSL:       getenv("MINIO_USE_SSL", "false") == "true",
		OpenAIAPIKey:      getenv("OPENAI_API_KEY", ""),
		OpenAIModel:       getenv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:     getenv("OPENAI_BASE_URL", ""),
		GenerateTimeout:   getduration("GENERATE_TIMEOUT", 45*time.Second),
		CacheTTL:          getduration("REPORT_CACHE_TTL", time.Hour),
		RequestsPerMinute: getint("RATE_LIMIT_PER_MINUTE", 30),
		StaticDir:         getenv("STATIC_DIR", "web/static"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
