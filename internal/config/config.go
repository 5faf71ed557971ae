// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
// Значения читаются из переменных окружения; при заданном CONFIG_PATH
// сначала читается yaml-файл, окружение имеет приоритет.
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"production"`
	DatabaseURL     string `yaml:"database_url" env:"DATABASE_URL" env-required:"true"`
	AdminAuth       `yaml:"admin_auth"`
	HTTPServer      `yaml:"http_server"`
	Session         `yaml:"session"`
	RedisConnection `yaml:"redis_connection"`
}

// AdminAuth хранит учётные данные единственного администратора.
type AdminAuth struct {
	AdminUser     string `yaml:"admin_user" env:"ADMIN_USER" env-required:"true"`
	AdminPassword string `yaml:"admin_password" env:"ADMIN_PASSWORD" env-required:"true"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Session структура для настройки токена административной сессии.
type Session struct {
	SecretKey  string        `yaml:"secret_key" env:"SESSION_SECRET_KEY" env-default:"change-me"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"12h"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env:"REDIS_TIMEOUT" env-default:"5s"`
}

// MustLoad загружает конфиг из окружения (и yaml-файла по CONFIG_PATH,
// если он задан), нормализует строку подключения и завершает процесс
// при некорректной конфигурации.
func MustLoad() *Config {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("file: %s - does not exist", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
	}

	cfg.DatabaseURL = NormalizeDatabaseURL(cfg.DatabaseURL)
	cfg.AdminUser = strings.TrimSpace(cfg.AdminUser)
	cfg.AdminPassword = strings.TrimSpace(cfg.AdminPassword)
	return &cfg
}

// NormalizeDatabaseURL переписывает схему postgres:// в postgresql://.
// Хостинги выдают строку подключения в первом виде, драйвер ожидает второй.
func NormalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}
