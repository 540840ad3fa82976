package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration. It is loaded once at startup
// and passed explicitly to constructors, never read from the process
// environment after that.
type Config struct {
	LogLevel string

	AWSRegion         string
	ClaudeModelID     string
	ClaudeMiniModelID string
	EmbeddingModelID  string

	APIPort string

	Database DatabaseConfig

	RedisAddr     string
	RedisPassword string
	MemoryTTL     time.Duration

	GuardrailRulesPath  string
	GuardrailMaxRetries int
	JudgesConfigPath    string

	SearchLimit    int
	MemoryMinScore float64

	SynthMaxTokens   int
	SynthTemperature float64
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

func Load() *Config {
	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:     getEnv("CLAUDE_MODEL_ID", ""),
		ClaudeMiniModelID: getEnv("CLAUDE_MINI_MODEL_ID", ""),
		EmbeddingModelID:  getEnv("EMBEDDING_MODEL_ID", "amazon.titan-embed-text-v2:0"),

		APIPort: getEnv("API_PORT", "8080"),

		Database: DatabaseConfig{
			Host:     getEnv("VECTOR_DB_HOST", "localhost"),
			Port:     getEnv("VECTOR_DB_PORT", "5432"),
			User:     getEnv("VECTOR_DB_USER", "rag_user"),
			Password: getEnv("VECTOR_DB_PASSWORD", ""),
			Database: getEnv("VECTOR_DB_DATABASE", "rag_db"),
			SSLMode:  getEnv("VECTOR_DB_SSLMODE", "disable"),
		},

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		MemoryTTL:     getEnvDuration("MEMORY_TTL", 30*time.Minute),

		GuardrailRulesPath:  getEnv("GUARDRAIL_RULES_PATH", ""),
		GuardrailMaxRetries: getEnvInt("GUARDRAIL_MAX_RETRIES", 3),
		JudgesConfigPath:    getEnv("JUDGES_CONFIG_PATH", "configs/judges.yaml"),

		SearchLimit:    getEnvInt("SEARCH_LIMIT", 5),
		MemoryMinScore: getEnvFloat("MEMORY_MIN_SCORE", 0.75),

		SynthMaxTokens:   getEnvInt("SYNTH_MAX_TOKENS", 2000),
		SynthTemperature: getEnvFloat("SYNTH_TEMPERATURE", 0.0),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
