package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/pagination/internal/logger"
)

type Config struct {
	Logger     logger.LoggerConfig `mapstructure:"logger"`
	Postgres   PostgresConfig      `mapstructure:"postgres"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
	Cache      CacheConfig         `mapstructure:"cache"`
	Listing    ListingConfig       `mapstructure:"listing"`
}

// PostgresConfig holds connection and pool tuning. Secrets usually come from APP_POSTGRES_* env.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"gte=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"gte=0,ltefield=MaxConns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime" validate:"gte=0"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time" validate:"gte=0"`
	HealthCheckPeriod int    `mapstructure:"health_check_period" validate:"gte=0"`
}

// PaginationConfig bounds what callers may request.
type PaginationConfig struct {
	DefaultPageSize uint `mapstructure:"default_page_size" validate:"min=1,ltefield=MaxPageSize"`
	MaxPageSize     uint `mapstructure:"max_page_size" validate:"min=1"`
	Spread          uint `mapstructure:"spread"`
}

// CacheConfig selects where item totals are cached.
type CacheConfig struct {
	Backend  string `mapstructure:"backend" validate:"oneof=none local redis"`
	RedisURL string `mapstructure:"redis_url" validate:"required_if=Backend redis"`
	TTL      int    `mapstructure:"ttl_seconds" validate:"gte=0"`
}

// ListingConfig describes the table the pagedump command lists.
type ListingConfig struct {
	Table    string   `mapstructure:"table" validate:"required"`
	Columns  []string `mapstructure:"columns"`
	OrderBy  []string `mapstructure:"order_by"`
	Page     uint     `mapstructure:"page"`
	PageSize uint     `mapstructure:"page_size"`
}

// Validate checks every section except the logger, which validates itself in logger.New.
func (c *Config) Validate() error {
	v := validator.New()
	for name, section := range map[string]any{
		"postgres":   &c.Postgres,
		"pagination": &c.Pagination,
		"cache":      &c.Cache,
		"listing":    &c.Listing,
	} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("invalid %s config: %w", name, err)
		}
	}
	return nil
}
