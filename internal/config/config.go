package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lobeca/lobeca-web/internal/domain"
)

// Config конфигурация приложения
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	LobecaAPI LobecaAPIConfig `toml:"lobeca_api"`
	Wizard    WizardConfig    `toml:"wizard"`
	Session   SessionConfig   `toml:"session"`
	OTP       OTPConfig       `toml:"otp"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки PostgreSQL (хранилище сессий)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки redis (кэш запросов и ожидающие регистрации)
type RedisConfig struct {
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	CacheTTL        int    `toml:"cache_ttl"`        // секунды
	RegistrationTTL int    `toml:"registration_ttl"` // секунды
}

// LobecaAPIConfig настройки клиента Lobeca API
type LobecaAPIConfig struct {
	URL         string `toml:"url"`
	Timeout     int    `toml:"timeout"` // секунды, применяется ко всем запросам
	ReadRetries int    `toml:"read_retries"`
}

// WizardConfig настройки мастера записи
type WizardConfig struct {
	SelectionDelayMs int    `toml:"selection_delay_ms"`
	DaysShown        int    `toml:"days_shown"`
	TimeZone         string `toml:"time_zone"`
}

// SelectionDelay задержка перед переходом на следующий шаг
func (w WizardConfig) SelectionDelay() time.Duration {
	return time.Duration(w.SelectionDelayMs) * time.Millisecond
}

// Location временная зона заведений
func (w WizardConfig) Location() (*time.Location, error) {
	return time.LoadLocation(w.TimeZone)
}

// SessionConfig настройки cookie сессии
type SessionConfig struct {
	CookieName string `toml:"cookie_name"`
	TTLHours   int    `toml:"ttl_hours"`
	Secure     bool   `toml:"secure"`
}

// OTPConfig ограничение частоты отправки и проверки кодов
type OTPConfig struct {
	PerMinute       int    `toml:"per_minute"`
	Burst           int    `toml:"burst"`
	VerifyPerMinute int    `toml:"verify_per_minute"` // попыток ввода кода на регистрацию
	VerifyBurst     int    `toml:"verify_burst"`
	DefaultRegion   string `toml:"default_region"`
}

// Load читает TOML-файл, .env рядом с ним и переменные окружения
func Load(path string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "lobeca-web",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:            "localhost:6379",
			CacheTTL:        60,
			RegistrationTTL: 900,
		},
		LobecaAPI: LobecaAPIConfig{
			Timeout:     10,
			ReadRetries: 2,
		},
		Wizard: WizardConfig{
			SelectionDelayMs: int(domain.DefaultSelectionDelay / time.Millisecond),
			DaysShown:        domain.DefaultBookingDaysShown,
			TimeZone:         domain.DefaultTimeZone,
		},
		Session: SessionConfig{
			CookieName: "lobeca_session",
			TTLHours:   24 * 30,
			Secure:     true,
		},
		OTP: OTPConfig{
			PerMinute:       3,
			Burst:           3,
			VerifyPerMinute: 5,
			VerifyBurst:     5,
			DefaultRegion:   "BR",
		},
	}
}

// applyEnv переопределяет секреты и адреса из переменных окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("LOBECA_API_URL"); v != "" {
		cfg.LobecaAPI.URL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return errors.New("server.http_port must be positive")
	}
	if c.LobecaAPI.URL == "" {
		return errors.New("lobeca_api.url is required")
	}
	if c.LobecaAPI.Timeout <= 0 {
		return errors.New("lobeca_api.timeout must be positive")
	}
	if c.LobecaAPI.ReadRetries < 0 {
		return errors.New("lobeca_api.read_retries must not be negative")
	}
	if c.Wizard.SelectionDelayMs < 0 {
		return errors.New("wizard.selection_delay_ms must not be negative")
	}
	if c.Wizard.DaysShown <= 0 {
		return errors.New("wizard.days_shown must be positive")
	}
	if _, err := c.Wizard.Location(); err != nil {
		return fmt.Errorf("wizard.time_zone: %w", err)
	}
	if c.Session.CookieName == "" {
		return errors.New("session.cookie_name is required")
	}
	if c.Redis.Addr == "" {
		return errors.New("redis.addr is required")
	}
	return nil
}
