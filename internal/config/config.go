package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration. Values come from defaults, then an
// optional YAML file, then CRM_* environment variables.
type Config struct {
	Addr        string    `yaml:"addr"`         // CRM_ADDR, default ":8080"
	OpsAddr     string    `yaml:"ops_addr"`     // CRM_OPS_ADDR, default ":9091", "off" disables
	DB          DBConfig  `yaml:"db"`           // CRM_DB_DRIVER, CRM_DB
	Log         LogConfig `yaml:"log"`          // CRM_LOG_LEVEL, CRM_LOG_FORMAT
	RequestLog  bool      `yaml:"request_log"`  // CRM_REQUEST_LOG, default false
	AutoMigrate bool      `yaml:"auto_migrate"` // CRM_AUTO_MIGRATE, default true
}

// DBConfig selects the SQLite driver and database location.
type DBConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default values.
const (
	DefaultAddr      = ":8080"
	DefaultOpsAddr   = ":9091"
	DefaultDBDriver  = "sqlite"
	DefaultDBPath    = "crm.db"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Defaults returns a Config populated with default values.
func Defaults() Config {
	return Config{
		Addr:    DefaultAddr,
		OpsAddr: DefaultOpsAddr,
		DB: DBConfig{
			Driver: DefaultDBDriver,
			Path:   DefaultDBPath,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		AutoMigrate: true,
	}
}

// Load builds the configuration. If path is empty the CRM_CONFIG variable is
// consulted; if that is empty too, no file is read.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv("CRM_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Addr = envOr("CRM_ADDR", cfg.Addr)
	cfg.OpsAddr = envOr("CRM_OPS_ADDR", cfg.OpsAddr)
	if cfg.OpsAddr == "off" {
		cfg.OpsAddr = ""
	}
	cfg.DB.Driver = envOr("CRM_DB_DRIVER", cfg.DB.Driver)
	cfg.DB.Path = envOr("CRM_DB", cfg.DB.Path)
	cfg.Log.Level = envOr("CRM_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envOr("CRM_LOG_FORMAT", cfg.Log.Format)

	var err error
	if cfg.RequestLog, err = envBool("CRM_REQUEST_LOG", cfg.RequestLog); err != nil {
		return err
	}
	if cfg.AutoMigrate, err = envBool("CRM_AUTO_MIGRATE", cfg.AutoMigrate); err != nil {
		return err
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.Addr == "" {
		return errors.New("addr must not be empty")
	}
	switch cfg.DB.Driver {
	case "sqlite", "sqlite3":
	default:
		return fmt.Errorf("db.driver %q unknown: want sqlite|sqlite3", cfg.DB.Driver)
	}
	if cfg.DB.Path == "" {
		return errors.New("db.path must not be empty")
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q unknown: want text|json", cfg.Log.Format)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
