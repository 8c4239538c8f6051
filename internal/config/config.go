// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TEMPLATE_FINDER_SERVER_PORT.
const EnvPrefix = "TEMPLATE_FINDER"

// Config is the full application configuration. Values come from an optional
// YAML or JSON file, then environment variables, then defaults.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" json:"server"`
	Catalog     CatalogConfig     `mapstructure:"catalog" json:"catalog"`
	Database    DatabaseConfig    `mapstructure:"database" json:"database"`
	ObjectStore ObjectStoreConfig `mapstructure:"object_store" json:"object_store"`
	Log         LogConfig         `mapstructure:"log" json:"log"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Port            int           `mapstructure:"port" json:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" json:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout"`
	// AllowedOrigin is sent as Access-Control-Allow-Origin
	AllowedOrigin string `mapstructure:"allowed_origin" json:"allowed_origin"`
}

// CatalogConfig lists where templates are loaded from.
type CatalogConfig struct {
	// Sources are catalog URIs: file paths, http(s) URLs, s3://bucket/key or "db"
	Sources  []string      `mapstructure:"sources" json:"sources"`
	Timeout  time.Duration `mapstructure:"timeout" json:"timeout"`
	Retries  int           `mapstructure:"retries" json:"retries"`
	CacheTTL time.Duration `mapstructure:"cache_ttl" json:"cache_ttl"`
}

// DatabaseConfig selects the SQL store.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" json:"driver"`
	URL    string `mapstructure:"url" json:"-"`
}

// ObjectStoreConfig holds S3-compatible storage credentials.
type ObjectStoreConfig struct {
	Endpoint        string `mapstructure:"endpoint" json:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id" json:"-"`
	SecretAccessKey string `mapstructure:"secret_access_key" json:"-"`
	Region          string `mapstructure:"region" json:"region"`
	UseSSL          bool   `mapstructure:"use_ssl" json:"use_ssl"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	JSON  bool `mapstructure:"json" json:"json"`
	Debug bool `mapstructure:"debug" json:"debug"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigin:   "*",
		},
		Catalog: CatalogConfig{
			Sources:  []string{"data/templates.json"},
			Timeout:  15 * time.Second,
			Retries:  2,
			CacheTTL: time.Minute,
		},
		Database: DatabaseConfig{
			Driver: "postgres",
		},
	}
}

// Load reads configuration from path (optional), environment variables and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DATABASE_URL: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Catalog.Sources = cleanSources(cfg.Catalog.Sources)

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.allowed_origin", d.Server.AllowedOrigin)

	v.SetDefault("catalog.sources", d.Catalog.Sources)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("catalog.retries", d.Catalog.Retries)
	v.SetDefault("catalog.cache_ttl", d.Catalog.CacheTTL)

	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.url", "")

	v.SetDefault("object_store.endpoint", "")
	v.SetDefault("object_store.access_key_id", "")
	v.SetDefault("object_store.secret_access_key", "")
	v.SetDefault("object_store.region", "")
	v.SetDefault("object_store.use_ssl", false)

	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
}

// cleanSources splits comma-joined entries and drops blanks.
func cleanSources(sources []string) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("config error: server timeouts must be non-negative")
	}

	if len(c.Catalog.Sources) == 0 {
		return fmt.Errorf("config error: 'catalog.sources' must list at least one source")
	}
	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("config error: 'catalog.timeout' must be non-negative")
	}
	if c.Catalog.Retries < 0 {
		return fmt.Errorf("config error: 'catalog.retries' must be non-negative")
	}
	if c.Catalog.CacheTTL < 0 {
		return fmt.Errorf("config error: 'catalog.cache_ttl' must be non-negative")
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("config error: 'database.driver' must be postgres or sqlite, got %q", c.Database.Driver)
	}

	for _, src := range c.Catalog.Sources {
		if src == "db" && c.Database.URL == "" {
			return fmt.Errorf("config error: catalog source 'db' requires 'database.url'")
		}
		if strings.HasPrefix(src, "s3://") && c.ObjectStore.Endpoint == "" {
			return fmt.Errorf("config error: catalog source %q requires 'object_store.endpoint'", src)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
// Bool fields are never merged since false cannot be told apart from unset.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if result.Server.ReadTimeout == 0 {
		result.Server.ReadTimeout = defaults.Server.ReadTimeout
	}
	if result.Server.WriteTimeout == 0 {
		result.Server.WriteTimeout = defaults.Server.WriteTimeout
	}
	if result.Server.ShutdownTimeout == 0 {
		result.Server.ShutdownTimeout = defaults.Server.ShutdownTimeout
	}
	if result.Server.AllowedOrigin == "" {
		result.Server.AllowedOrigin = defaults.Server.AllowedOrigin
	}

	if len(result.Catalog.Sources) == 0 {
		result.Catalog.Sources = append([]string(nil), defaults.Catalog.Sources...)
	}
	if result.Catalog.Timeout == 0 {
		result.Catalog.Timeout = defaults.Catalog.Timeout
	}
	if result.Catalog.CacheTTL == 0 {
		result.Catalog.CacheTTL = defaults.Catalog.CacheTTL
	}

	if result.Database.Driver == "" {
		result.Database.Driver = defaults.Database.Driver
	}
	if result.Database.URL == "" {
		result.Database.URL = defaults.Database.URL
	}

	if result.ObjectStore.Endpoint == "" {
		result.ObjectStore.Endpoint = defaults.ObjectStore.Endpoint
	}
	if result.ObjectStore.Region == "" {
		result.ObjectStore.Region = defaults.ObjectStore.Region
	}

	return result
}
