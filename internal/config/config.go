package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Database   DatabaseConfig   `toml:"database"`
	BondSports BondSportsConfig `toml:"bondsports"`
	Snapshots  SnapshotsConfig  `toml:"snapshots"`
	Auth       AuthConfig       `toml:"auth"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// BondSportsConfig настройки клиента букинг-платформы
// Учетные данные берутся из окружения и в config.toml не хранятся
type BondSportsConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"` // seconds

	// Заполняются из окружения в Load
	Email    string `toml:"-"`
	Password string `toml:"-"`
	Token    string `toml:"-"`
}

// HasCredentials возвращает true, если заданы хоть какие-то учетные данные
func (c BondSportsConfig) HasCredentials() bool {
	return c.Token != "" || (c.Email != "" && c.Password != "")
}

// SnapshotsConfig настройки истории расчётов доступности
type SnapshotsConfig struct {
	Enabled bool `toml:"enabled"`
}

// AuthConfig настройки доступа к защищенным эндпоинтам сервиса
type AuthConfig struct {
	APIKey string `toml:"api_key"`
}

// Переменные окружения с учетными данными платформы
const (
	EnvEmail    = "BONDSPORTS_EMAIL"
	EnvPassword = "BONDSPORTS_PASSWORD"
	EnvToken    = "BONDSPORTS_TOKEN"
	EnvAPIKey   = "SRF_API_KEY"
)

// Load загружает конфигурацию из TOML-файла и накладывает переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.BondSports.Email = os.Getenv(EnvEmail)
	cfg.BondSports.Password = os.Getenv(EnvPassword)
	cfg.BondSports.Token = os.Getenv(EnvToken)

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.Auth.APIKey = key
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "srf-availability-service",
			Path:        "/metrics",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		BondSports: BondSportsConfig{
			Timeout: 15,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.BondSports.Timeout <= 0 {
		return fmt.Errorf("config: bondsports timeout must be positive")
	}
	if c.Snapshots.Enabled && c.Database.DBName == "" {
		return fmt.Errorf("config: snapshots enabled but database.dbname is empty")
	}
	return nil
}
