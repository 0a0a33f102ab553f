package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://b12-m11-session.web.app",
}

// ServerConfig holds server-level config
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	ServiceName    string   `yaml:"service_name"`
}

type LogConfig struct {
	LogLevel string `yaml:"level"`
}

// MongoDB connection config
type MongoConfig struct {
	URI             string        `yaml:"uri"`
	DBName          string        `yaml:"db_name"`
	MaxPoolSize     uint64        `yaml:"max_pool_size"`
	MinPoolSize     uint64        `yaml:"min_pool_size"`
	MaxConnIdleMinutes    int    `yaml:"max_conn_idle_minutes"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds"`

	// Derived from the minute and second fields above.
	MaxConnIdleTime time.Duration `yaml:"-"`
	ConnectTimeout  time.Duration `yaml:"-"`
}

// Stripe checkout config
type StripeConfig struct {
	SecretKey string `yaml:"secret_key"`
	Currency  string `yaml:"currency"`
	ClientURL string `yaml:"client_url"`
}

// Firebase identity config. ServiceKey is the base64 encoded service account JSON.
type FirebaseConfig struct {
	ServiceKey string `yaml:"service_key"`
}

type PubSubConfig struct {
	Enabled      bool   `yaml:"enabled"`
	ProjectID    string `yaml:"project_id"`
	PaymentTopic string `yaml:"payment_topic"`
}

type OtelConfig struct {
	CollectorURL string `yaml:"collector_url"`
}

type LoansConfig struct {
	HomeLimit int64 `yaml:"home_limit"`
}

// AppConfig is the main config struct that holds all configs
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Stripe   StripeConfig   `yaml:"stripe"`
	Firebase FirebaseConfig `yaml:"firebase"`
	PubSub   PubSubConfig   `yaml:"pubsub"`
	Otel     OtelConfig     `yaml:"otel"`
	Loans    LoansConfig    `yaml:"loans"`
	Logging  LogConfig      `yaml:"logging"`
}

func assignDefaultConfigValues(cfg *AppConfig) *AppConfig {

	// server config defaults
	cfg.Server.Port = GetEnvOrDefaultAsInt("PORT", GetEnvOrDefaultAsInt("SERVER_PORT", orInt(cfg.Server.Port, 3000)))
	cfg.Server.AllowedOrigins = GetEnvOrDefaultAsList("CORS_ALLOWED_ORIGINS", cfg.Server.AllowedOrigins)
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = defaultAllowedOrigins
	}
	cfg.Server.ServiceName = GetEnvOrDefaultAsString("SERVICE_NAME", orString(cfg.Server.ServiceName, "loanlink"))

	// log config defaults
	cfg.Logging.LogLevel = GetEnvOrDefaultAsString("LOGGING_LEVEL", orString(cfg.Logging.LogLevel, "info"))

	// MongoDB config defaults
	cfg.Mongo.URI = GetEnvOrDefaultAsString("MONGODB_URI", GetEnvOrDefaultAsString("MONGO_URI", cfg.Mongo.URI))
	cfg.Mongo.DBName = GetEnvOrDefaultAsString("MONGO_DB_NAME", orString(cfg.Mongo.DBName, "loanLink"))
	cfg.Mongo.MaxPoolSize = GetEnvOrDefaultAsUint64("MONGO_MAX_POOL_SIZE", orUint64(cfg.Mongo.MaxPoolSize, 20))
	cfg.Mongo.MinPoolSize = GetEnvOrDefaultAsUint64("MONGO_MIN_POOL_SIZE", orUint64(cfg.Mongo.MinPoolSize, 5))
	cfg.Mongo.MaxConnIdleMinutes = GetEnvOrDefaultAsInt("MONGO_MAX_CONN_IDLE_MINUTES", orInt(cfg.Mongo.MaxConnIdleMinutes, 30))
	cfg.Mongo.ConnectTimeoutSeconds = GetEnvOrDefaultAsInt("MONGO_CONNECT_TIMEOUT_SECONDS", orInt(cfg.Mongo.ConnectTimeoutSeconds, 10))
	cfg.Mongo.MaxConnIdleTime = time.Duration(cfg.Mongo.MaxConnIdleMinutes) * time.Minute
	cfg.Mongo.ConnectTimeout = time.Duration(cfg.Mongo.ConnectTimeoutSeconds) * time.Second

	// Stripe config defaults
	cfg.Stripe.SecretKey = GetEnvOrDefaultAsString("STRIPE_SECRET_KEY", cfg.Stripe.SecretKey)
	cfg.Stripe.Currency = GetEnvOrDefaultAsString("STRIPE_CURRENCY", orString(cfg.Stripe.Currency, "usd"))
	cfg.Stripe.ClientURL = strings.TrimRight(
		GetEnvOrDefaultAsString("CLIENT_URL", orString(cfg.Stripe.ClientURL, "http://localhost:5173")), "/")

	// Firebase config defaults
	cfg.Firebase.ServiceKey = GetEnvOrDefaultAsString("FB_SERVICE_KEY", cfg.Firebase.ServiceKey)

	// PubSub config defaults
	cfg.PubSub.Enabled = GetEnvOrDefaultAsBool("PUBSUB_ENABLED", cfg.PubSub.Enabled)
	cfg.PubSub.ProjectID = GetEnvOrDefaultAsString("PROJECT_ID", cfg.PubSub.ProjectID)
	cfg.PubSub.PaymentTopic = GetEnvOrDefaultAsString("PUBSUB_PAYMENT_TOPIC", cfg.PubSub.PaymentTopic)

	// Otel config defaults
	cfg.Otel.CollectorURL = GetEnvOrDefaultAsString("OTEL_URL", cfg.Otel.CollectorURL)

	// Loans config defaults, 0 returns every home loan
	cfg.Loans.HomeLimit = int64(GetEnvOrDefaultAsInt("HOME_LOANS_LIMIT", int(cfg.Loans.HomeLimit)))

	return cfg
}

// LoadFromConfigFilePath loads and parses config file into AppConfig.
// A missing file is not an error: the environment alone can configure the service.
func LoadFromConfigFilePath(configPath string) (*AppConfig, error) {
	var cfg AppConfig

	// #nosec G304: configPath comes from the operator environment
	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("Config file not found, using environment only", zap.String("path", configPath))
	case err != nil:
		logger.Error("Failed to read config file", err, zap.String("path", configPath))
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			logger.Error("Failed to unmarshal config", err)
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	defaultCfg := assignDefaultConfigValues(&cfg)

	if err := validateConfig(defaultCfg); err != nil {
		logger.Error("Config validation failed", err)
		return nil, err
	}

	logger.Info("Configuration loaded successfully", zap.String("path", configPath))

	return defaultCfg, nil
}

func validateConfig(cfg *AppConfig) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	mongo := cfg.Mongo
	if strings.TrimSpace(mongo.URI) == "" {
		return errors.New(log_messages.ErrorMissingMongoURI)
	}
	if mongo.MinPoolSize > mongo.MaxPoolSize {
		return fmt.Errorf("mongo.min_pool_size (%d) must not exceed mongo.max_pool_size (%d)",
			mongo.MinPoolSize, mongo.MaxPoolSize)
	}
	if mongo.ConnectTimeout <= 0 {
		return fmt.Errorf("mongo.connect_timeout_seconds must be positive, got %v", mongo.ConnectTimeout)
	}

	if strings.TrimSpace(cfg.Stripe.SecretKey) == "" {
		return errors.New(log_messages.ErrorMissingStripeKey)
	}
	if strings.TrimSpace(cfg.Firebase.ServiceKey) == "" {
		return errors.New(log_messages.ErrorMissingServiceKey)
	}

	if cfg.PubSub.Enabled && (cfg.PubSub.ProjectID == "" || cfg.PubSub.PaymentTopic == "") {
		return errors.New(log_messages.ErrorMissingPaymentTopic)
	}

	if cfg.Loans.HomeLimit < 0 {
		return fmt.Errorf("loans.home_limit must not be negative, got %d", cfg.Loans.HomeLimit)
	}

	return nil
}

// GetEnvOrDefaultAsInt returns the value of the given env variable
// as an int or the default value if not set or invalid.
func GetEnvOrDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(strings.TrimSpace(valueStr), 10, 64)
	if err != nil {
		return defaultValue
	}
	return int(value)
}

// GetEnvOrDefaultAsUint64 returns the value of the env variable
// as uint64 or the default value if not set or invalid.
func GetEnvOrDefaultAsUint64(key string, defaultValue uint64) uint64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseUint(strings.TrimSpace(valueStr), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvOrDefaultAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvOrDefaultAsString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		if strings.TrimSpace(val) != "" {
			return val
		}
	}
	return defaultVal
}

// GetEnvOrDefaultAsList splits a comma separated env variable, dropping blanks.
func GetEnvOrDefaultAsList(key string, defaultVal []string) []string {
	raw := GetEnvOrDefaultAsString(key, "")
	if raw == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orUint64(v, def uint64) uint64 {
	if v == 0 {
		return def
	}
	return v
}

// LoadFromConfig loads a .env file when present, then the config file named by CONFIG_PATH.
func LoadFromConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}

	configPath := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")

	cfg, err := LoadFromConfigFilePath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	return cfg, nil
}
