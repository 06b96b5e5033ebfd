package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the transit API.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The port of the public REST API.
// - MonitoringPort: The port serving /healthz and /metrics.
// - RateLimit: Requests per second allowed per client, negative disables limiting.
// - ShutdownTimeout: How long in-flight requests may take once a stop signal arrives.
// - Database: Configuration settings for the PostgreSQL database.
// - NATS: Broker receiving vehicle positions, disabled when the URL is empty.
// - Geocoder: Address lookup settings for nearest stops by address.
type Config struct {
	Env             string         `mapstructure:"env"`
	Port            int            `mapstructure:"port"`
	MonitoringPort  int            `mapstructure:"monitoring_port"`
	RateLimit       int            `mapstructure:"rate_limit"`
	ShutdownTimeout time.Duration  `mapstructure:"shutdown_timeout"`
	Database        PostgresConfig `mapstructure:"postgres"`
	NATS            NATSConfig     `mapstructure:"nats"`
	Geocoder        GeocoderConfig `mapstructure:"geocoder"`
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`     // Host is the database server address.
	Port     string `mapstructure:"port"`     // Port is the database server port.
	User     string `mapstructure:"user"`     // User is the database user.
	Password string `mapstructure:"password"` // Password is the database user's password.
	Name     string `mapstructure:"db_name"`  // Name is the name of the database.
}

type NATSConfig struct {
	URL           string `mapstructure:"url"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

// GeocoderConfig selects the address provider. CacheSize zero disables the cache.
type GeocoderConfig struct {
	Provider      string        `mapstructure:"provider"` // google, nominatim or none
	APIKey        string        `mapstructure:"api_key"`
	RateLimit     int           `mapstructure:"rate_limit"`
	CountryCodes  string        `mapstructure:"country_codes"`
	CacheSize     int           `mapstructure:"cache_size"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	AddressSuffix string        `mapstructure:"address_suffix"` // e.g. "Juiz de Fora, MG"
}

// ConfigFileEnv names the variable pointing at an optional YAML configuration file.
const ConfigFileEnv = "OLHOVIVO_CONFIG"

// Environment variables bound to configuration keys. They take precedence over the file.
var envBindings = map[string]string{
	"env":              "OLHOVIVO_ENV",
	"port":             "OLHOVIVO_PORT",
	"monitoring_port":  "OLHOVIVO_MONITORING_PORT",
	"rate_limit":       "OLHOVIVO_RATE_LIMIT",
	"shutdown_timeout": "OLHOVIVO_SHUTDOWN_TIMEOUT",

	"postgres.host":     "DB_HOST",
	"postgres.port":     "DB_PORT",
	"postgres.user":     "DB_USERNAME",
	"postgres.password": "DB_PASSWORD",
	"postgres.db_name":  "DB_NAME",

	"nats.url":            "NATS_URL",
	"nats.subject_prefix": "NATS_SUBJECT_PREFIX",

	"geocoder.provider":       "GEOCODER_PROVIDER",
	"geocoder.api_key":        "GEOCODER_API_KEY",
	"geocoder.rate_limit":     "GEOCODER_RATE_LIMIT",
	"geocoder.country_codes":  "GEOCODER_COUNTRY_CODES",
	"geocoder.cache_size":     "GEOCODER_CACHE_SIZE",
	"geocoder.cache_ttl":      "GEOCODER_CACHE_TTL",
	"geocoder.address_suffix": "GEOCODER_ADDRESS_SUFFIX",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("port", 8000)
	v.SetDefault("monitoring_port", 8080)
	v.SetDefault("rate_limit", 50)
	v.SetDefault("shutdown_timeout", "10s")

	v.SetDefault("postgres.port", "5432")

	v.SetDefault("nats.subject_prefix", "olhovivo.positions")

	v.SetDefault("geocoder.provider", "none")
	v.SetDefault("geocoder.country_codes", "br")
	v.SetDefault("geocoder.cache_size", 1024)
	v.SetDefault("geocoder.cache_ttl", "24h")
}

// MustLoad reads .env, the optional file named by OLHOVIVO_CONFIG and the environment,
// in increasing order of precedence. It panics when the result cannot be used.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			panic("failed to bind environment variable " + env)
		}
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("failed to decode configuration")
	}

	if cfg.Port <= 0 || cfg.MonitoringPort <= 0 {
		panic("failed to parse port from configuration, must be a positive integer")
	}
	if cfg.Geocoder.CacheSize < 0 {
		panic("geocoder cache size must not be negative")
	}

	return &cfg
}
