package infra

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Uploads   UploadsConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
	// PublicURL is the externally reachable base of this server, used to build image URLs.
	PublicURL string
}

type DatabaseConfig struct {
	Driver          string // postgres or sqlite
	URL             string
	AutoMigrate     bool
	MigrationsPath  string
	LogLevel        string // silent, error, warn, info
	SlowThreshold   time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type UploadsConfig struct {
	Dir         string
	Route       string
	MaxMemoryMB int64
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	Output     string // stdout, stderr, or file path
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type TelemetryConfig struct {
	Enabled       bool
	Endpoint      string
	Insecure      bool
	ServiceName   string
	SamplingRatio float64
}

// ImageBaseURL is where stored uploads are reachable from outside.
func (c *Config) ImageBaseURL() (string, error) {
	return url.JoinPath(c.App.PublicURL, c.Uploads.Route)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "happy")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3333")
	v.SetDefault("app.public_url", "http://localhost:3333")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.migrations_path", "migrations")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.slow_threshold", 200*time.Millisecond)
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("uploads.dir", "uploads")
	v.SetDefault("uploads.route", "/uploads")
	v.SetDefault("uploads.max_memory_mb", 8)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.cors_allow_origins", []string{"*"})

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4318")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("telemetry.service_name", "happy-api")
	v.SetDefault("telemetry.sampling_ratio", 1.0)
}

// LoadConfig reads configuration with the following priority (highest first):
//  1. HAPPY_ prefixed environment variables (HAPPY_DATABASE_URL), plus PORT and POSTGRES_URL
//  2. config.yaml in the given paths
//  3. built-in defaults
//
// A .env file in the working directory is loaded into the environment first when present.
func LoadConfig(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("HAPPY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("app.port", "HAPPY_APP_PORT", "PORT")
	_ = v.BindEnv("database.url", "HAPPY_DATABASE_URL", "POSTGRES_URL")

	cfg := &Config{
		App: AppConfig{
			Name:      v.GetString("app.name"),
			Env:       v.GetString("app.env"),
			Port:      v.GetString("app.port"),
			PublicURL: v.GetString("app.public_url"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("database.driver")),
			URL:             v.GetString("database.url"),
			AutoMigrate:     v.GetBool("database.auto_migrate"),
			MigrationsPath:  v.GetString("database.migrations_path"),
			LogLevel:        v.GetString("database.log_level"),
			SlowThreshold:   v.GetDuration("database.slow_threshold"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Uploads: UploadsConfig{
			Dir:         v.GetString("uploads.dir"),
			Route:       v.GetString("uploads.route"),
			MaxMemoryMB: v.GetInt64("uploads.max_memory_mb"),
		},
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			Output:     v.GetString("log.output"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			ShutdownTimeout:  v.GetDuration("http.shutdown_timeout"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
		},
		Telemetry: TelemetryConfig{
			Enabled:       v.GetBool("telemetry.enabled"),
			Endpoint:      v.GetString("telemetry.endpoint"),
			Insecure:      v.GetBool("telemetry.insecure"),
			ServiceName:   v.GetString("telemetry.service_name"),
			SamplingRatio: v.GetFloat64("telemetry.sampling_ratio"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.URL == "" {
		return errors.New("database url is required (HAPPY_DATABASE_URL or POSTGRES_URL)")
	}
	if c.App.Port == "" {
		return errors.New("app port is required")
	}
	if _, err := url.ParseRequestURI(c.App.PublicURL); err != nil {
		return fmt.Errorf("invalid app public url: %w", err)
	}
	if c.Uploads.Dir == "" {
		return errors.New("uploads dir is required")
	}
	if !strings.HasPrefix(c.Uploads.Route, "/") {
		return fmt.Errorf("uploads route %q must start with /", c.Uploads.Route)
	}
	return nil
}
