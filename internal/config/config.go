package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// DefaultSystemPrompt is the instruction given to the model before the product prompt.
const DefaultSystemPrompt = "Você é um especialista em marketing de produtos."

// GenerationConfig holds tuning knobs for the upstream completion call.
// Values can be overridden by the optional YAML config file.
type GenerationConfig struct {
	SystemPrompt string  `yaml:"system_prompt"`
	Temperature  float64 `yaml:"temperature"`
	MaxTokens    int     `yaml:"max_tokens"`
}

type Config struct {
	Port         string
	GinMode      string
	DatabasePath string

	// AI providers, in precedence order: Groq > OpenAI > Ollama.
	GroqAPIKey      string
	GroqModel       string
	GroqVisionModel string
	OpenAIAPIKey    string
	OllamaBaseURL   string
	OllamaModel     string

	// Server
	ServerShutdownTimeoutSeconds int
	UpstreamTimeoutSeconds       int

	// Logging
	LogLevel  string
	LogFormat string

	Generation GenerationConfig `yaml:"generation"`
}

// Load builds the configuration from the environment and the optional
// YAML config file. The returned value is meant to be passed explicitly
// to whoever needs it; there is no package-level state.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),

		// Database
		DatabasePath: getEnvOrDefault("DATABASE_PATH", "db.sqlite3"),

		// Groq (free cloud tier) – key from https://console.groq.com
		GroqAPIKey:      getEnvOrDefault("GROQ_API_KEY", ""),
		GroqModel:       getEnvOrDefault("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqVisionModel: getEnvOrDefault("GROQ_VISION_MODEL", "meta-llama/llama-4-scout-17b-16e-instruct"),

		// OpenAI (paid)
		OpenAIAPIKey: getEnvOrDefault("OPENAI_API_KEY", ""),

		// Ollama (free, local) – install from https://ollama.com and run: ollama pull llama3.2
		OllamaBaseURL: getEnvOrDefault("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		OllamaModel:   getEnvOrDefault("OLLAMA_MODEL", "llama3.2"),

		// Server
		ServerShutdownTimeoutSeconds: getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 30),
		UpstreamTimeoutSeconds:       getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 60),

		// Logging
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "debug"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "text"),

		Generation: GenerationConfig{
			SystemPrompt: DefaultSystemPrompt,
			Temperature:  0.7,
			MaxTokens:    350,
		},
	}

	// Load optional settings from a configuration file. Unlike the provider
	// credentials, these are deployment tuning knobs that should live next to
	// the binary rather than in the environment.
	configFilePath := getEnvOrDefault("CONFIG_FILE", "config.yaml")

	configFile, err := os.Open(configFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to open config file %s: %w", configFilePath, err)
		}
		// The config file is optional.
		return cfg, nil
	}
	defer configFile.Close()

	log.Printf("Loading config file: %v", configFilePath)

	if err := LoadConfigFile(configFile, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configFilePath, err)
	}

	if cfg.Generation.SystemPrompt == "" {
		cfg.Generation.SystemPrompt = DefaultSystemPrompt
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		} else {
			log.Printf("Warning: Failed to parse environment variable %s='%s' as int, using default %d: %v", key, value, defaultValue, err)
		}
	}
	return defaultValue
}

// LoadConfigFile decodes YAML settings from reader on top of config.
func LoadConfigFile(reader io.Reader, config *Config) error {
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(config); err != nil {
		return err
	}

	return nil
}
