package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	// Option store
	StoreDriver string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBMaxConns  int
	CacheSize   int
	CacheTTL    time.Duration
	SeedFile    string

	// Security
	APIKey         string // API key for the JSON API, also the admin page password
	AdminUser      string
	NonceSecret    string
	NonceLifetime  time.Duration
	TrustedProxies []string

	DefaultLanguage string
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:       getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		Version:         getEnv(EnvVersion, DefaultVersion),
		StoreDriver:     strings.ToLower(getEnv(EnvStoreDriver, DefaultStoreDriver)),
		DBUser:          getEnv(EnvDBUser, "postgres"),
		DBPassword:      getEnv(EnvDBPassword, "postgres"),
		DBHost:          getEnv(EnvDBHost, "localhost"),
		DBPort:          getEnv(EnvDBPort, "5432"),
		DBName:          getEnv(EnvDBName, "salebadge"),
		DBMaxConns:      getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		CacheSize:       getEnvAsInt(EnvCacheSize, DefaultCacheSize),
		CacheTTL:        getEnvAsDuration(EnvCacheTTL, DefaultCacheTTL),
		SeedFile:        getEnv(EnvSeedFile, DefaultSeedFile),
		APIKey:          getEnv(EnvAPIKey, ""),
		AdminUser:       getEnv(EnvAdminUser, DefaultAdminUser),
		NonceSecret:     getEnv(EnvNonceSecret, ""),
		NonceLifetime:   getEnvAsDuration(EnvNonceLifetime, DefaultNonceLifetime),
		TrustedProxies:  getEnvAsList(EnvTrustedProxies),
		DefaultLanguage: getEnv(EnvDefaultLanguage, DefaultLanguage),
		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	// Without an explicit secret nonces are derived from the API key.
	if cfg.NonceSecret == "" {
		cfg.NonceSecret = cfg.APIKey
	}

	switch cfg.StoreDriver {
	case StoreDriverMemory, StoreDriverPostgres:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: expected %s or %s", cfg.StoreDriver, StoreDriverMemory, StoreDriverPostgres)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or error
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration such as "30s", falling back on absence or error
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// UsesPostgres reports whether options are kept in PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.StoreDriver == StoreDriverPostgres
}
