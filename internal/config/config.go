package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CatalogBuiltin  = "builtin"
	CatalogFile     = "file"
	CatalogPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Customer struct {
		ID      int    `mapstructure:"id"`
		Name    string `mapstructure:"name"`
		Email   string `mapstructure:"email"`
		Address string `mapstructure:"address"`
	} `mapstructure:"customer"`
	Catalog struct {
		Source string `mapstructure:"source"`
		File   string `mapstructure:"file"`
	} `mapstructure:"catalog"`
	Postgres struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		DBName   string `mapstructure:"dbname"`
	} `mapstructure:"postgres"`
	Redis struct {
		Enabled bool          `mapstructure:"enabled"`
		Host    string        `mapstructure:"host"`
		Port    int           `mapstructure:"port"`
		TTL     time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
	RabbitMQ struct {
		Enabled  bool   `mapstructure:"enabled"`
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Queue    string `mapstructure:"queue"`
	} `mapstructure:"rabbitmq"`
	Consul struct {
		Enabled bool   `mapstructure:"enabled"`
		Host    string `mapstructure:"host"`
		Port    int    `mapstructure:"port"`
	} `mapstructure:"consul"`
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level       string `mapstructure:"level"`
		Development bool   `mapstructure:"development"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("customer.id", 1)
	v.SetDefault("customer.name", "John Doe")
	v.SetDefault("customer.email", "johndoe@example.com")
	v.SetDefault("customer.address", "123 Main St")

	v.SetDefault("catalog.source", CatalogBuiltin)
	v.SetDefault("catalog.file", "catalog.yaml")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "minishop")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.dbname", "minishop")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("rabbitmq.enabled", false)
	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", 5672)
	v.SetDefault("rabbitmq.user", "guest")
	v.SetDefault("rabbitmq.password", "guest")
	v.SetDefault("rabbitmq.queue", "order.placed")

	v.SetDefault("consul.enabled", false)
	v.SetDefault("consul.host", "localhost")
	v.SetDefault("consul.port", 8500)

	v.SetDefault("server.port", 8083)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)
}

// Load reads config.yaml from the working directory or ./config, then applies
// SHOP_* environment overrides (SHOP_REDIS_ENABLED=true sets redis.enabled).
// A missing file is fine; defaults cover every key.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	return load(v)
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("shop")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogBuiltin, CatalogPostgres:
	case CatalogFile:
		if c.Catalog.File == "" {
			return fmt.Errorf("catalog.file is required when catalog.source is %q", CatalogFile)
		}
	default:
		return fmt.Errorf("unknown catalog.source %q", c.Catalog.Source)
	}
	if c.Redis.Enabled && c.Catalog.Source != CatalogPostgres {
		return fmt.Errorf("redis caching requires catalog.source %q", CatalogPostgres)
	}
	return nil
}
