package config

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	DriverPostgres = "postgres"
	DriverPGX      = "pgx"
	DriverSQLite   = "sqlite"

	defaultDBPort    = 5432
	defaultMaxConns  = 10
	defaultPort      = 5002
	defaultStaticDir = "public"
	defaultSSLMode   = "disable"
)

type DBConfig struct {
	Driver   string
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
}

type Config struct {
	DB        DBConfig
	Port      int
	StaticDir string
	LogLevel  slog.Level
}

// Load reads envPath into the process environment (a missing file is not an
// error) and builds the configuration from environment variables.
func Load(envPath string) (Config, error) {
	if envPath != "" {
		err := godotenv.Load(envPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "load %v", envPath)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		DB: DBConfig{
			Driver:   strings.ToLower(valueOr(getenv("DB_DRIVER"), DriverPostgres)),
			URL:      getenv("DB_URL"),
			Host:     valueOr(getenv("DB_HOST"), "localhost"),
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME"),
			SSLMode:  valueOr(getenv("DB_SSLMODE"), defaultSSLMode),
		},
		StaticDir: valueOr(getenv("STATIC_DIR"), defaultStaticDir),
	}

	switch cfg.DB.Driver {
	case DriverPostgres, DriverPGX, DriverSQLite:
	default:
		return Config{}, errors.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	var err error
	if cfg.DB.Port, err = intOr(getenv, "DB_PORT", defaultDBPort); err != nil {
		return Config{}, err
	}
	if cfg.DB.MaxConns, err = intOr(getenv, "DB_MAX_CONNS", defaultMaxConns); err != nil {
		return Config{}, err
	}
	if cfg.Port, err = intOr(getenv, "PORT", defaultPort); err != nil {
		return Config{}, err
	}
	if cfg.DB.MaxConns < 1 {
		return Config{}, errors.Errorf("DB_MAX_CONNS must be positive, got %v", cfg.DB.MaxConns)
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, errors.Wrapf(err, "invalid LOG_LEVEL %q", level)
		}
	}

	if cfg.DB.Driver == DriverSQLite && cfg.DB.URL == "" {
		return Config{}, errors.New("DB_URL is required for the sqlite driver")
	}
	return cfg, nil
}

// DSN returns DB_URL when set, otherwise a postgres URL assembled from the
// individual DB_* variables.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     fmt.Sprintf("%v:%v", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	switch {
	case c.User != "" && c.Password != "":
		u.User = url.UserPassword(c.User, c.Password)
	case c.User != "":
		u.User = url.User(c.User)
	}
	return u.String()
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%v", c.Port)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOr(getenv func(string) string, key string, fallback int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %v %q", key, raw)
	}
	return value, nil
}
