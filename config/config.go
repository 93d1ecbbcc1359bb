package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Authentication & Security Configuration
	JWT    JWTConfig
	Cookie CookieConfig
	CORS   CORSConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for PostgreSQL
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig is the configuration for token signing.
// Access and refresh tokens use independent secrets.
type JWTConfig struct {
	AccessSecretKey  string
	RefreshSecretKey string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	Issuer           string
}

// CookieConfig is the configuration for cookie-based credentials.
// Name is the HttpOnly refresh cookie; LegacyName is the old session
// cookie still honoured on page navigations.
type CookieConfig struct {
	Name       string
	LegacyName string
	Domain     string
	Secure     bool
	SameSite   string
}

// CORSConfig is the configuration for cross-origin requests
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("digital-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/digital/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// Server
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.db_name")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// JWT
	cfg.JWT.AccessSecretKey = viper.GetString("jwt.access_secret_key")
	cfg.JWT.RefreshSecretKey = viper.GetString("jwt.refresh_secret_key")
	cfg.JWT.AccessTTL = viper.GetDuration("jwt.access_ttl")
	cfg.JWT.RefreshTTL = viper.GetDuration("jwt.refresh_ttl")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")

	// Cookie
	cfg.Cookie.Name = viper.GetString("cookie.name")
	cfg.Cookie.LegacyName = viper.GetString("cookie.legacy_name")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.SameSite = viper.GetString("cookie.samesite")

	// CORS
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")
	cfg.CORS.AllowCredentials = viper.GetBool("cors.allow_credentials")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Postgres
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.db_name", "digital")
	viper.SetDefault("postgres.ssl_mode", "disable")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// JWT
	viper.SetDefault("jwt.access_ttl", 15*time.Minute)
	viper.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	viper.SetDefault("jwt.issuer", "digital-api")

	// Cookie
	viper.SetDefault("cookie.name", "refreshToken")
	viper.SetDefault("cookie.legacy_name", "token")
	viper.SetDefault("cookie.domain", "")
	viper.SetDefault("cookie.secure", true)
	viper.SetDefault("cookie.samesite", "Strict")

	// CORS
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("cors.allow_credentials", false)
}

func validate(cfg *Config) error {
	// Validate JWT
	if cfg.JWT.AccessSecretKey == "" {
		return fmt.Errorf("jwt.access_secret_key is required")
	}
	if len(cfg.JWT.AccessSecretKey) < 32 {
		return fmt.Errorf("jwt.access_secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.RefreshSecretKey == "" {
		return fmt.Errorf("jwt.refresh_secret_key is required")
	}
	if len(cfg.JWT.RefreshSecretKey) < 32 {
		return fmt.Errorf("jwt.refresh_secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.AccessSecretKey == cfg.JWT.RefreshSecretKey {
		return fmt.Errorf("jwt.access_secret_key and jwt.refresh_secret_key must differ")
	}

	// Validate Postgres
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}

	// Validate Redis
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate Cookie
	if cfg.Cookie.Name == "" {
		return fmt.Errorf("cookie.name is required")
	}
	if cfg.Cookie.LegacyName == "" {
		return fmt.Errorf("cookie.legacy_name is required")
	}

	return nil
}
