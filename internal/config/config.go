package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Provider kinds understood by the geolocation chain
const (
	ProviderIPAPI   = "ip-api"
	ProviderIPInfo  = "ipinfo"
	ProviderIPAPICo = "ipapi-co"
)

// MaxDaysBackCeiling bounds how far back one aggregation run may reach
const MaxDaysBackCeiling = 365

// Config represents the application configuration
type Config struct {
	Server     ServerConfig    `mapstructure:"server"`
	Log        LogConfig       `mapstructure:"log"`
	Database   DatabaseConfig  `mapstructure:"database"`
	RocketMQ   RocketMQConfig  `mapstructure:"rocketmq"`
	Storage    StorageConfig   `mapstructure:"storage"`
	Geo        GeoConfig       `mapstructure:"geo"`
	Analytics  AnalyticsConfig `mapstructure:"analytics"`
	Scheduler  SchedulerConfig `mapstructure:"scheduler"`
	CronSecret string          `mapstructure:"cron_secret"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// LogConfig represents logger configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	LinkCacheTTL time.Duration `mapstructure:"link_cache_ttl"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// StorageConfig controls the retry policy of the storage gateway
type StorageConfig struct {
	MaxRetries int           `mapstructure:"max_retries"`
	BaseDelay  time.Duration `mapstructure:"base_delay"`
}

// GeoConfig represents the geolocation provider chain configuration
type GeoConfig struct {
	Providers    []ProviderConfig `mapstructure:"providers"`
	CacheTTL     time.Duration    `mapstructure:"cache_ttl"`
	LocalDefault LocationConfig   `mapstructure:"local_default"`
}

// ProviderConfig describes a single geolocation provider in the chain
type ProviderConfig struct {
	Kind          string        `mapstructure:"kind"`
	BaseURL       string        `mapstructure:"base_url"`
	Token         string        `mapstructure:"token"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RatePerMinute int           `mapstructure:"rate_per_minute"`
	Disabled      bool          `mapstructure:"disabled"`
}

// LocationConfig is the fixed location reported for loopback and private addresses
type LocationConfig struct {
	CountryCode  string  `mapstructure:"country_code"`
	CountryName  string  `mapstructure:"country_name"`
	Region       string  `mapstructure:"region"`
	City         string  `mapstructure:"city"`
	Timezone     string  `mapstructure:"timezone"`
	Latitude     float64 `mapstructure:"latitude"`
	Longitude    float64 `mapstructure:"longitude"`
	Organization string  `mapstructure:"organization"`
}

// AnalyticsConfig represents click recording and rollup configuration
type AnalyticsConfig struct {
	ClickRetentionDays     int `mapstructure:"click_retention_days"`
	AggregateRetentionDays int `mapstructure:"aggregate_retention_days"`
	MaxDaysBack            int `mapstructure:"max_days_back"`
	DispatchWorkers        int `mapstructure:"dispatch_workers"`
	DispatchQueueSize      int `mapstructure:"dispatch_queue_size"`
}

// SchedulerConfig represents the periodic job configuration
type SchedulerConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Timezone       string `mapstructure:"timezone"`
	DailyAnalytics string `mapstructure:"daily_analytics"`
	WeeklyCleanup  string `mapstructure:"weekly_cleanup"`
	HealthCheck    string `mapstructure:"health_check"`
	Backfill       string `mapstructure:"backfill"`
	BackfillDays   int    `mapstructure:"backfill_days"`
}

// Load loads configuration from file. Environment variables override file
// values, with dots in keys replaced by underscores (DATABASE_MYSQL_DSN).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	c.Database.Redis.Password = expandEnv(c.Database.Redis.Password)
	c.Database.MySQL.DSN = expandEnv(c.Database.MySQL.DSN)
	c.CronSecret = expandEnv(c.CronSecret)

	if len(c.Geo.Providers) == 0 {
		c.Geo.Providers = DefaultProviders()
	}
	for i := range c.Geo.Providers {
		c.Geo.Providers[i].Token = expandEnv(c.Geo.Providers[i].Token)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks values that would otherwise fail late at runtime
func (c *Config) Validate() error {
	if c.Storage.MaxRetries < 1 {
		return fmt.Errorf("storage.max_retries must be at least 1, got %d", c.Storage.MaxRetries)
	}
	if c.Analytics.MaxDaysBack < 1 || c.Analytics.MaxDaysBack > MaxDaysBackCeiling {
		return fmt.Errorf("analytics.max_days_back must be between 1 and %d, got %d", MaxDaysBackCeiling, c.Analytics.MaxDaysBack)
	}
	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("invalid scheduler.timezone %q: %w", c.Scheduler.Timezone, err)
	}
	for _, p := range c.Geo.Providers {
		switch p.Kind {
		case ProviderIPAPI, ProviderIPInfo, ProviderIPAPICo:
		default:
			return fmt.Errorf("unknown geo provider kind %q", p.Kind)
		}
	}
	return nil
}

// DefaultProviders returns the provider chain used when none is configured.
// Order matters: the first provider to answer wins.
func DefaultProviders() []ProviderConfig {
	return []ProviderConfig{
		{Kind: ProviderIPAPI, BaseURL: "http://ip-api.com", Timeout: 3 * time.Second, RatePerMinute: 45},
		{Kind: ProviderIPInfo, BaseURL: "https://ipinfo.io", Timeout: 4 * time.Second, Token: "${IPINFO_TOKEN}"},
		{Kind: ProviderIPAPICo, BaseURL: "https://ipapi.co", Timeout: 5 * time.Second},
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.mysql.max_open_conns", 25)
	v.SetDefault("database.mysql.max_idle_conns", 10)
	v.SetDefault("database.mysql.conn_max_lifetime", time.Hour)
	v.SetDefault("database.redis.link_cache_ttl", time.Hour)
	v.SetDefault("rocketmq.topic", "link_clicks")
	v.SetDefault("rocketmq.group", "linkpulse_click_group")
	v.SetDefault("storage.max_retries", 3)
	v.SetDefault("storage.base_delay", time.Second)
	v.SetDefault("geo.cache_ttl", 24*time.Hour)
	v.SetDefault("geo.local_default.country_code", "TH")
	v.SetDefault("geo.local_default.country_name", "Thailand")
	v.SetDefault("geo.local_default.region", "Bangkok")
	v.SetDefault("geo.local_default.city", "Bangkok")
	v.SetDefault("geo.local_default.timezone", "Asia/Bangkok")
	v.SetDefault("geo.local_default.latitude", 13.7563)
	v.SetDefault("geo.local_default.longitude", 100.5018)
	v.SetDefault("geo.local_default.organization", "Local Network")
	v.SetDefault("analytics.click_retention_days", 180)
	v.SetDefault("analytics.aggregate_retention_days", 365)
	v.SetDefault("analytics.max_days_back", 365)
	v.SetDefault("analytics.dispatch_workers", 4)
	v.SetDefault("analytics.dispatch_queue_size", 1024)
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.timezone", "Asia/Bangkok")
	v.SetDefault("scheduler.daily_analytics", "0 1 * * *")
	v.SetDefault("scheduler.weekly_cleanup", "0 2 * * 0")
	v.SetDefault("scheduler.health_check", "*/30 * * * *")
	v.SetDefault("scheduler.backfill", "0 3 * * 1")
	v.SetDefault("scheduler.backfill_days", 7)
	v.SetDefault("cron_secret", "${CRON_SECRET}")
}

// expandEnv expands a value of the form ${VAR} from the process environment
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}
