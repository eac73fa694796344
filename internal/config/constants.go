package config

import "time"

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// Defaults applied when a variable is not set
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultVersion         = "dev"
	DefaultStoreDriver     = StoreDriverMemory
	DefaultAdminUser       = "admin"
	DefaultLanguage        = "pl"
	DefaultSeedFile        = "configs/badge_seed.json"
	DefaultDBMaxConns      = 5
	DefaultCacheSize       = 64
	DefaultCacheTTL        = 30 * time.Second
	DefaultNonceLifetime   = 24 * time.Hour
	DefaultShutdownTimeout = 10 * time.Second
)

// Environment variable names
const (
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvVersion         = "VERSION"
	EnvStoreDriver     = "STORE_DRIVER"
	EnvDBUser          = "DB_USER"
	EnvDBPassword      = "DB_PASSWORD"
	EnvDBHost          = "DB_HOST"
	EnvDBPort          = "DB_PORT"
	EnvDBName          = "DB_NAME"
	EnvDBMaxConns      = "DB_MAX_CONNS"
	EnvAPIKey          = "API_KEY"
	EnvAdminUser       = "ADMIN_USER"
	EnvNonceSecret     = "NONCE_SECRET"
	EnvNonceLifetime   = "NONCE_LIFETIME"
	EnvSeedFile        = "SEED_FILE"
	EnvCacheSize       = "CACHE_SIZE"
	EnvCacheTTL        = "CACHE_TTL"
	EnvDefaultLanguage = "DEFAULT_LANGUAGE"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Example values shipped in .env.example
const (
	ExampleDBPassword  = "change_this_secure_password"
	ExampleAPIKey      = "generate_with_openssl_rand_hex_32"
	ExampleNonceSecret = "generate_with_openssl_rand_hex_32"
)
