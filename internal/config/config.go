package config

import (
	"os"
)

type Config struct {
	Port        string
	MongoDBURI  string
	Environment string
	LogLevel    string
	StaticDir   string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "3000"),
		MongoDBURI:  getEnvWithDefault("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		StaticDir:   getEnvWithDefault("STATIC_DIR", "public"),
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
