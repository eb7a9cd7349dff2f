// Package config loads the API server configuration from defaults, an
// optional .env file, SCRAPERADMIN_SERVER_* environment variables and
// command-line flags, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SCRAPERADMIN_SERVER"

// Config keys.
const (
	KeyAddr          = "addr"
	KeyDB            = "db"
	KeyFilesDir      = "files_dir"
	KeyJWTSecret     = "jwt_secret"
	KeyTokenTTL      = "token_ttl"
	KeyAdminUsername = "admin_username"
	KeyAdminPassword = "admin_password"
	KeyAdminEmail    = "admin_email"
	KeyReportStep    = "report_step"
	KeySeed          = "seed"
	KeyLogLevel      = "log_level"
	KeyLoginRate     = "login_rate"
)

// Defaults.
const (
	DefaultAddr          = ":8000"
	DefaultDB            = ":memory:"
	DefaultTokenTTL      = 30 * time.Minute
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminEmail    = "admin@example.com"
	DefaultReportStep    = 5 * time.Second
	DefaultLogLevel      = "info"
	DefaultLoginRate     = 10
)

// Config holds the resolved server configuration.
type Config struct {
	Addr          string
	DBPath        string
	FilesDir      string // пусто: файлы в памяти
	JWTSecret     string // пусто: генерируется при старте
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	TokenTTL      time.Duration
	ReportStep    time.Duration
	LoginRate     int // попыток логина в минуту с одного IP
	LogLevel      slog.Level
	Seed          bool
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeyDB, DefaultDB)
	v.SetDefault(KeyFilesDir, "")
	v.SetDefault(KeyJWTSecret, "")
	v.SetDefault(KeyTokenTTL, DefaultTokenTTL)
	v.SetDefault(KeyAdminUsername, DefaultAdminUsername)
	v.SetDefault(KeyAdminPassword, DefaultAdminPassword)
	v.SetDefault(KeyAdminEmail, DefaultAdminEmail)
	v.SetDefault(KeyReportStep, DefaultReportStep)
	v.SetDefault(KeySeed, true)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLoginRate, DefaultLoginRate)
}

// Load resolves the configuration from v. Flags must already be bound.
func Load(v *viper.Viper) (*Config, error) {
	// .env не перезаписывает уже заданные переменные окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", v.GetString(KeyLogLevel), err)
	}

	cfg := &Config{
		Addr:          v.GetString(KeyAddr),
		DBPath:        v.GetString(KeyDB),
		FilesDir:      v.GetString(KeyFilesDir),
		JWTSecret:     v.GetString(KeyJWTSecret),
		AdminUsername: v.GetString(KeyAdminUsername),
		AdminPassword: v.GetString(KeyAdminPassword),
		AdminEmail:    v.GetString(KeyAdminEmail),
		TokenTTL:      v.GetDuration(KeyTokenTTL),
		ReportStep:    v.GetDuration(KeyReportStep),
		LoginRate:     v.GetInt(KeyLoginRate),
		LogLevel:      level,
		Seed:          v.GetBool(KeySeed),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path is empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %s", c.TokenTTL)
	}
	if c.ReportStep < 0 {
		return fmt.Errorf("report_step must not be negative, got %s", c.ReportStep)
	}
	if c.LoginRate <= 0 {
		return fmt.Errorf("login_rate must be positive, got %d", c.LoginRate)
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		return fmt.Errorf("admin_username and admin_password are required")
	}
	return nil
}
