package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yigit/courseapproval/internal/pkg/helpers"
)

// Store drivers
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"PORT" validate:"required,numeric"`
		Mode            string `yaml:"mode" env:"SERVER_MODE" validate:"oneof=development production test"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" validate:"duration"`
	} `yaml:"server"`

	Database struct {
		Driver         string `yaml:"driver" env:"DB_DRIVER" validate:"oneof=mongo memory"`
		URI            string `yaml:"uri" env:"MONGO_URI" validate:"required_if=Driver mongo"`
		Name           string `yaml:"name" env:"MONGO_DB_NAME" validate:"required"`
		Collection     string `yaml:"collection" env:"MONGO_COLLECTION" validate:"required"`
		ConnectTimeout string `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" validate:"duration"`
		QueryTimeout   string `yaml:"query_timeout" env:"MONGO_QUERY_TIMEOUT" validate:"duration"`
		MaxPoolSize    int    `yaml:"max_pool_size" env:"MONGO_MAX_POOL_SIZE" validate:"gte=0"`
		EnsureIndexes  bool   `yaml:"ensure_indexes" env:"MONGO_ENSURE_INDEXES"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT" validate:"oneof=json text"`
	} `yaml:"logging"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})
	return v
}

// LoadConfig loads configuration from a YAML file, an optional .env file and environment variables,
// in increasing order of precedence. A missing config file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadDotEnv(GetEnv("DOTENV_PATH", ".env")); err != nil {
		return nil, err
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadDotEnv populates the process environment from a .env file without overriding variables
// that are already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Driver = DriverMongo
	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "new_db"
	config.Database.Collection = "new_collection"
	config.Database.ConnectTimeout = "10s"
	config.Database.QueryTimeout = "5s"
	config.Database.MaxPoolSize = 20
	config.Database.EnsureIndexes = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	config.Database.Driver = strings.ToLower(strings.TrimSpace(config.Database.Driver))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	if err := validate.Struct(config); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s failed %q validation (value %q)", fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value()))
		}
		return err
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// ShutdownTimeout returns the graceful shutdown budget
func (c *Config) ShutdownTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.ShutdownTimeout, 10*time.Second)
}

// ConnectTimeout returns the store connection timeout
func (c *Config) ConnectTimeout() time.Duration {
	return helpers.ParseDuration(c.Database.ConnectTimeout, 10*time.Second)
}

// QueryTimeout returns the per-operation store timeout
func (c *Config) QueryTimeout() time.Duration {
	return helpers.ParseDuration(c.Database.QueryTimeout, 5*time.Second)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
