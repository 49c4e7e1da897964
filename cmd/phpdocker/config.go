package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/phpdocker-io/generator/internal/core/project"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all application configuration.
type Config struct {
	Project  ProjectConfig  `mapstructure:"project"`
	PHP      PHPConfig      `mapstructure:"php"`
	Services ServicesConfig `mapstructure:"services"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// ProjectConfig holds the global project settings.
type ProjectConfig struct {
	Name       string `mapstructure:"name"`
	BasePort   int    `mapstructure:"base_port"`
	AppPath    string `mapstructure:"app_path"`
	WorkingDir string `mapstructure:"working_dir"`
}

// PHPConfig holds the PHP runtime settings.
type PHPConfig struct {
	Version    string   `mapstructure:"version"`
	Extensions []string `mapstructure:"extensions"`
}

// ServicesConfig holds the optional per-service sections. A service is part
// of the project only when its enabled flag is set.
type ServicesConfig struct {
	Mailhog       MailhogConfig       `mapstructure:"mailhog"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Memcached     MemcachedConfig     `mapstructure:"memcached"`
}

// MailhogConfig enables the MailHog mail catcher.
type MailhogConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DatabaseConfig holds database service configuration.
type DatabaseConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Engine       string `mapstructure:"engine"`
	Version      string `mapstructure:"version"`
	RootPassword string `mapstructure:"root_password"`
	Name         string `mapstructure:"name"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
}

// ElasticsearchConfig holds Elasticsearch service configuration.
type ElasticsearchConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Version string `mapstructure:"version"`
}

// RedisConfig holds Redis service configuration.
type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Version string `mapstructure:"version"`
}

// MemcachedConfig holds Memcached service configuration.
type MemcachedConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Version string `mapstructure:"version"`
}

// OutputConfig holds output location configuration.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// =============================================================================
// Config Loading
// =============================================================================

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	// Pull a local .env into the process environment first so PHPDOCKER_*
	// overrides can live there too. A missing file is fine.
	_ = godotenv.Load()

	v := viper.New()

	// Set defaults
	v.SetDefault("project.name", "")
	v.SetDefault("project.base_port", project.DefaultBasePort)
	v.SetDefault("project.app_path", project.DefaultAppPath)
	v.SetDefault("project.working_dir", project.DefaultWorkingDir)
	v.SetDefault("php.version", project.DefaultPHPVersion)
	v.SetDefault("php.extensions", []string{})
	v.SetDefault("services.mailhog.enabled", false)
	v.SetDefault("services.database.enabled", false)
	v.SetDefault("services.database.engine", "mysql")
	v.SetDefault("services.database.version", "8.0")
	v.SetDefault("services.database.root_password", "")
	v.SetDefault("services.database.name", "")
	v.SetDefault("services.database.username", "")
	v.SetDefault("services.database.password", "")
	v.SetDefault("services.elasticsearch.enabled", false)
	v.SetDefault("services.elasticsearch.version", "7.17.0")
	v.SetDefault("services.redis.enabled", false)
	v.SetDefault("services.redis.version", "latest")
	v.SetDefault("services.memcached.enabled", false)
	v.SetDefault("services.memcached.version", "latest")
	v.SetDefault("output.dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Load from file: an explicit path wins, otherwise look for a
	// phpdocker.yml next to the invocation.
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("phpdocker")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// Only return error if a file was found and is invalid
		if _, ok := err.(viper.ConfigParseError); ok {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		// File not found is OK, we'll use defaults
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("PHPDOCKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// =============================================================================
// Options Mapping
// =============================================================================

// ToOptions maps the loaded configuration onto the generator's options
// model. Disabled service sections become nil feature pointers.
func (c *Config) ToOptions() *project.Options {
	opts := project.NewOptions(c.Project.Name)
	opts.BasePort = c.Project.BasePort
	opts.AppPath = c.Project.AppPath
	opts.WorkingDir = c.Project.WorkingDir
	opts.PHP = project.PHPOptions{
		Version:    c.PHP.Version,
		Extensions: c.PHP.Extensions,
	}

	if c.Services.Mailhog.Enabled {
		opts.Mailhog = &project.MailhogOptions{}
	}
	if c.Services.Database.Enabled {
		opts.Database = &project.DatabaseOptions{
			Engine:       project.DatabaseEngine(c.Services.Database.Engine),
			Version:      c.Services.Database.Version,
			RootPassword: c.Services.Database.RootPassword,
			Name:         c.Services.Database.Name,
			Username:     c.Services.Database.Username,
			Password:     c.Services.Database.Password,
		}
	}
	if c.Services.Elasticsearch.Enabled {
		opts.Elasticsearch = &project.ElasticsearchOptions{
			Version: c.Services.Elasticsearch.Version,
		}
	}
	if c.Services.Redis.Enabled {
		opts.Redis = &project.RedisOptions{
			Version: c.Services.Redis.Version,
		}
	}
	if c.Services.Memcached.Enabled {
		opts.Memcached = &project.MemcachedOptions{
			Version: c.Services.Memcached.Version,
		}
	}

	return opts
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format.
// Logs go to stderr; stdout stays clean for command output.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
