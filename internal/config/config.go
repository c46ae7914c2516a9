package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Schedule ScheduleConfig `toml:"schedule"`
	Auth     AuthConfig     `toml:"auth"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ScheduleConfig рабочее окно барбершопа
type ScheduleConfig struct {
	OpenHour    int    `toml:"open_hour"`
	CloseHour   int    `toml:"close_hour"`
	SlotMinutes int    `toml:"slot_minutes"`
	Timezone    string `toml:"timezone"`
}

// ToDomain конвертирует конфигурацию в доменное расписание
// Пустые значения заменяются дефолтами
func (s ScheduleConfig) ToDomain() (domain.Schedule, error) {
	schedule := domain.Schedule{
		OpenHour:    s.OpenHour,
		CloseHour:   s.CloseHour,
		SlotMinutes: s.SlotMinutes,
	}

	if schedule.OpenHour == 0 && schedule.CloseHour == 0 {
		schedule.OpenHour = domain.DefaultOpenHour
		schedule.CloseHour = domain.DefaultCloseHour
	}
	if schedule.SlotMinutes == 0 {
		schedule.SlotMinutes = domain.DefaultSlotMinutes
	}

	if schedule.CloseHour <= schedule.OpenHour {
		return domain.Schedule{}, fmt.Errorf("config: close_hour (%d) must be after open_hour (%d)",
			schedule.CloseHour, schedule.OpenHour)
	}
	if schedule.SlotMinutes <= 0 || 60%schedule.SlotMinutes != 0 {
		return domain.Schedule{}, fmt.Errorf("config: slot_minutes (%d) must divide an hour", schedule.SlotMinutes)
	}

	tz := s.Timezone
	if tz == "" {
		tz = "America/Sao_Paulo"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: load timezone %q: %w", tz, err)
	}
	schedule.Location = loc

	return schedule, nil
}

// AuthConfig настройки аутентификации
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
	BcryptCost    int    `toml:"bcrypt_cost"`
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

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: auth.jwt_secret is required")
	}
	if cfg.Auth.TokenTTLHours == 0 {
		cfg.Auth.TokenTTLHours = 72
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	return &cfg, nil
}
