package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SCRAPERADMIN"

// Config keys.
const (
	KeyServer      = "server"
	KeyDB          = "db"
	KeyTimeout     = "timeout"
	KeyLogLevel    = "log_level"
	KeyDownloadDir = "download_dir"
	KeyStaleTime   = "stale_time"
)

// Defaults.
const (
	DefaultServer   = "http://localhost:8000"
	DefaultDB       = "scraperadmin.db"
	DefaultTimeout  = 10 * time.Second
	DefaultLogLevel = "warn"
	DefaultDir      = "."
)

// Config holds the resolved client configuration.
type Config struct {
	Server      string
	DBPath      string
	LogLevel    string
	DownloadDir string
	Timeout     time.Duration
	StaleTime   time.Duration
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyServer, DefaultServer)
	v.SetDefault(KeyDB, DefaultDB)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyDownloadDir, DefaultDir)
	v.SetDefault(KeyStaleTime, time.Duration(0))
}

// Load resolves the configuration from v. Flags must already be bound.
// configFile may be empty, then the default locations are searched and a
// missing file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("scraperadmin")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "scraperadmin"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server:      v.GetString(KeyServer),
		DBPath:      v.GetString(KeyDB),
		LogLevel:    v.GetString(KeyLogLevel),
		DownloadDir: v.GetString(KeyDownloadDir),
		Timeout:     v.GetDuration(KeyTimeout),
		StaleTime:   v.GetDuration(KeyStaleTime),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server URL %q: must be http(s)://host[:port]", c.Server)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.StaleTime < 0 {
		return fmt.Errorf("stale_time must not be negative, got %s", c.StaleTime)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path is empty")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// APIBaseURL is the root all API paths are resolved against.
func (c *Config) APIBaseURL() string {
	return strings.TrimRight(c.Server, "/") + "/api"
}

// ParseLogLevel maps a level name to slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// NewLogger creates the text logger used by every client component.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// loadDotEnv не перезаписывает уже заданные переменные окружения
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
