package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Access tokens.
	AccessTokenSecret string        `mapstructure:"ACCESS_TOKEN_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`

	// Redis backs the confirmation queue.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisQueueDB      int    `mapstructure:"REDIS_QUEUE_DB"`
	QueueEnabled      bool   `mapstructure:"QUEUE_ENABLED"`
	WorkerConcurrency int    `mapstructure:"WORKER_CONCURRENCY"`

	// AdminCheckRequireAuth puts GET /admin/:email behind the token guard.
	AdminCheckRequireAuth bool     `mapstructure:"ADMIN_CHECK_REQUIRE_AUTH"`
	CORSAllowOrigins      []string `mapstructure:"CORS_ALLOW_ORIGINS"`
}

var AppConfig Config

// ErrMissingSecret is returned by Validate when no signing secret is configured in production.
var ErrMissingSecret = errors.New("ACCESS_TOKEN_SECRET must be set in production")

// developmentSecret signs tokens when no secret is configured outside production.
const developmentSecret = "doctors-portal-dev-secret"

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "doctors_portal")
	v.SetDefault("ACCESS_TOKEN_SECRET", "")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_QUEUE_DB", 0)
	v.SetDefault("QUEUE_ENABLED", true)
	v.SetDefault("WORKER_CONCURRENCY", 5)
	v.SetDefault("ADMIN_CHECK_REQUIRE_AUTH", false)
	v.SetDefault("CORS_ALLOW_ORIGINS", []string{"*"})
}

// Load reads configuration from v. It looks for "config.yaml" in the current
// and "config" directory and lets environment variables override it.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.AccessTokenSecret == "" && !cfg.IsProduction() {
		cfg.AccessTokenSecret = developmentSecret
	}
	return cfg, cfg.Validate()
}

// LoadConfig populates AppConfig from the global viper instance.
func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Validate checks settings that have no safe default.
func (c Config) Validate() error {
	if c.IsProduction() && c.AccessTokenSecret == "" {
		return ErrMissingSecret
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return AppConfig.IsProduction()
}
