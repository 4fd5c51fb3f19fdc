package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Redis      RedisConfig      `toml:"redis"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// RedisConfig кэш каталога услуг; при Enabled=false сервис читает услуги напрямую из БД
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// SchedulingConfig значения по умолчанию для генерации окон
type SchedulingConfig struct {
	SlotStepMinutes    int    `toml:"slot_step_minutes"`
	MinLeadMinutes     int    `toml:"min_lead_minutes"`
	Timezone           string `toml:"timezone"`
	DefaultClosingTime string `toml:"default_closing_time"`
	MaxRangeDays       int    `toml:"max_range_days"`
}

// DSN строка подключения к PostgreSQL для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения в виде postgres:// (для мигратора)
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// TTL время жизни записей кэша
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// Defaults параметры расписания для use case слоя
func (s SchedulingConfig) Defaults() (common.Defaults, error) {
	closing, err := types.NewTimeStringFromString(s.DefaultClosingTime)
	if err != nil {
		return common.Defaults{}, fmt.Errorf("scheduling.default_closing_time: %w", err)
	}
	if _, err := common.LoadLocation(s.Timezone); err != nil {
		return common.Defaults{}, fmt.Errorf("scheduling.timezone: %w", err)
	}

	return common.Defaults{
		SlotStepMinutes: s.SlotStepMinutes,
		MinLeadMinutes:  s.MinLeadMinutes,
		Timezone:        s.Timezone,
		ClosingTime:     closing,
		MaxRangeDays:    s.MaxRangeDays,
	}, nil
}

// Load читает конфигурацию из TOML файла, затем применяет переменные окружения
// (в том числе из .env, если файл есть). Отсутствующий TOML файл не ошибка.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	defaults := common.DefaultDefaults()

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "schedule",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "schedule-service",
			Path:        "/metrics",
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			TTLSeconds: 300,
		},
		Scheduling: SchedulingConfig{
			SlotStepMinutes:    defaults.SlotStepMinutes,
			MinLeadMinutes:     defaults.MinLeadMinutes,
			Timezone:           defaults.Timezone,
			DefaultClosingTime: defaults.ClosingTime.String(),
			MaxRangeDays:       defaults.MaxRangeDays,
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Server.HTTPPort = getEnvAsInt("HTTP_PORT", cfg.Server.HTTPPort)

	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvAsInt("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.DBName = getEnv("DB_NAME", cfg.Database.DBName)
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", cfg.Database.SSLMode)

	cfg.Logs.Level = getEnv("LOG_LEVEL", cfg.Logs.Level)
	cfg.Logs.File = getEnv("LOG_FILE", cfg.Logs.File)

	cfg.Metrics.Enabled = getEnvAsBool("METRICS_ENABLED", cfg.Metrics.Enabled)

	cfg.Redis.Enabled = getEnvAsBool("REDIS_ENABLED", cfg.Redis.Enabled)
	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)

	cfg.Scheduling.Timezone = getEnv("SCHEDULE_TIMEZONE", cfg.Scheduling.Timezone)
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.Scheduling.SlotStepMinutes <= 0 {
		return fmt.Errorf("scheduling.slot_step_minutes must be positive, got %d", c.Scheduling.SlotStepMinutes)
	}
	if c.Scheduling.MinLeadMinutes < 0 {
		return fmt.Errorf("scheduling.min_lead_minutes must not be negative, got %d", c.Scheduling.MinLeadMinutes)
	}
	if c.Scheduling.MaxRangeDays <= 0 {
		return fmt.Errorf("scheduling.max_range_days must be positive, got %d", c.Scheduling.MaxRangeDays)
	}
	if c.Redis.Enabled && c.Redis.TTLSeconds <= 0 {
		return fmt.Errorf("redis.ttl_seconds must be positive when redis is enabled, got %d", c.Redis.TTLSeconds)
	}
	if _, err := c.Scheduling.Defaults(); err != nil {
		return err
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
