package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Chat     ChatConfig     `mapstructure:"chat"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	HTTPPort int    `mapstructure:"http_port"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite3 or postgres
	DSN    string `mapstructure:"dsn"`
	LogSQL bool   `mapstructure:"log_sql"`
}

// ChatConfig holds the chat bridge configuration
type ChatConfig struct {
	// OutboundURL receives render and toast instructions as JSON posts.
	OutboundURL string `mapstructure:"outbound_url"`
}

// QuizConfig holds quiz engine tuning
type QuizConfig struct {
	LessonLength int `mapstructure:"lesson_length"`
	Distractors  int `mapstructure:"distractors"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.http_port", 8080)

	// Database defaults
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.dsn", "file:lingobot.db?cache=shared&_fk=1")
	viper.SetDefault("database.log_sql", false)

	// Chat defaults
	viper.SetDefault("chat.outbound_url", "http://localhost:8081/v1/instructions")

	// Quiz defaults
	viper.SetDefault("quiz.lesson_length", 10)
	viper.SetDefault("quiz.distractors", 3)

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

// DatabaseDriver validates and returns the configured database driver.
func (c *Config) DatabaseDriver() (string, error) {
	switch c.Database.Driver {
	case "sqlite3", "postgres":
		return c.Database.Driver, nil
	case "":
		return "", fmt.Errorf("database driver not configured")
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
}

// DatabaseURL returns the connection string for the configured driver.
func (c *Config) DatabaseURL() (string, error) {
	if c.Database.DSN == "" {
		return "", fmt.Errorf("database dsn not configured")
	}
	return c.Database.DSN, nil
}
