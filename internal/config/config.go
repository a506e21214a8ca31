package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server       Server       `toml:"server"`
	Database     Database     `toml:"database"`
	Redis        Redis        `toml:"redis"`
	Logs         Logs         `toml:"logs"`
	Metrics      Metrics      `toml:"metrics"`
	Booking      Booking      `toml:"booking"`
	Integrations Integrations `toml:"integrations"`
}

// Server настройки HTTP-сервера
type Server struct {
	Port            int `toml:"port"`
	ReadTimeoutSec  int `toml:"read_timeout_sec"`
	WriteTimeoutSec int `toml:"write_timeout_sec"`
	IdleTimeoutSec  int `toml:"idle_timeout_sec"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	Name            string `toml:"name"`
	SSLMode         string `toml:"ssl_mode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime_sec"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// Redis настройки подключения к Redis
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Logs настройки логирования
type Logs struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
}

// Booking параметры бизнес-логики бронирования
type Booking struct {
	SlotDurationMinutes int `toml:"slot_duration_minutes"`
	SlotBufferMinutes   int `toml:"slot_buffer_minutes"`
	HoldTTLMinutes      int `toml:"hold_ttl_minutes"`
	LockTTLSeconds      int `toml:"lock_ttl_seconds"`
}

// HoldTTL возвращает TTL холда как Duration
func (b Booking) HoldTTL() time.Duration {
	return time.Duration(b.HoldTTLMinutes) * time.Minute
}

// LockTTL возвращает TTL лока коммита как Duration
func (b Booking) LockTTL() time.Duration {
	return time.Duration(b.LockTTLSeconds) * time.Second
}

// Integration настройки клиента внешнего сервиса
type Integration struct {
	URL        string `toml:"url"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// Timeout возвращает таймаут клиента как Duration
func (i Integration) Timeout() time.Duration {
	return time.Duration(i.TimeoutSec) * time.Second
}

// Integrations настройки клиентов внешних сервисов
type Integrations struct {
	ShowroomService Integration `toml:"showroom_service"`
	StaffService    Integration `toml:"staff_service"`
	VehicleService  Integration `toml:"vehicle_service"`
	CustomerService Integration `toml:"customer_service"`
	NotifyService   Integration `toml:"notify_service"`
}

// Load читает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	return &cfg, nil
}
