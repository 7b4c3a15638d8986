package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// CacheableEntities - наборы сущностей, для которых можно включить кэш второго уровня
var CacheableEntities = []string{"regions", "countries", "locations", "departments", "tasks"}

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Cache    CacheConfig    `toml:"cache"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port            string   `toml:"port"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	User        string `toml:"user"`
	Password    string `toml:"password"`
	DBName      string `toml:"dbname"`
	SSLMode     string `toml:"sslmode"`
	MaxAttempts int    `toml:"max_attempts"`
}

// RedisConfig - настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// CacheConfig - настройки кэша второго уровня
type CacheConfig struct {
	Enabled  bool     `toml:"enabled"`
	TTL      Duration `toml:"ttl"`
	Entities []string `toml:"entities"`
}

// LogConfig - настройки логирования
type LogConfig struct {
	File    string `toml:"file"`
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

// Duration - time.Duration, задаваемая строкой вида "15s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Caches сообщает, включён ли кэш для набора сущностей name
func (c *CacheConfig) Caches(name string) bool {
	return c.Enabled && slices.Contains(c.Entities, name)
}

// SlogLevel разбирает уровень логирования; неизвестное значение даёт Info
func (c *LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			ShutdownTimeout: Duration{30 * time.Second},
		},
		Database: DatabaseConfig{
			Host:        "localhost",
			Port:        "5432",
			User:        "postgres",
			Password:    "postgres",
			DBName:      "hr",
			SSLMode:     "disable",
			MaxAttempts: 30,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Cache: CacheConfig{
			TTL:      Duration{time.Hour},
			Entities: slices.Clone(CacheableEntities),
		},
		Log: LogConfig{
			File:    "hr-entity-api.log",
			Level:   "info",
			Console: true,
		},
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем TOML файл из
// CONFIG_FILE (если задан), затем переменные окружения.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Log.File, "LOG_FILE")
	setString(&cfg.Log.Level, "LOG_LEVEL")

	if value := os.Getenv("CACHE_ENTITIES"); value != "" {
		cfg.Cache.Entities = splitList(value)
	}

	for key, target := range map[string]*int{
		"DB_MAX_ATTEMPTS": &cfg.Database.MaxAttempts,
		"REDIS_DB":        &cfg.Redis.DB,
	} {
		if value := os.Getenv(key); value != "" {
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*target = n
		}
	}

	for key, target := range map[string]*bool{
		"CACHE_ENABLED": &cfg.Cache.Enabled,
		"LOG_CONSOLE":   &cfg.Log.Console,
	} {
		if value := os.Getenv(key); value != "" {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*target = b
		}
	}

	if value := os.Getenv("CACHE_TTL"); value != "" {
		if err := cfg.Cache.TTL.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid CACHE_TTL: %w", err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Database.MaxAttempts < 1 {
		return fmt.Errorf("database max_attempts must be positive, got %d", c.Database.MaxAttempts)
	}
	if c.Cache.Enabled && c.Cache.TTL.Duration <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", c.Cache.TTL)
	}
	for _, name := range c.Cache.Entities {
		if !slices.Contains(CacheableEntities, name) {
			return fmt.Errorf("unknown cache entity set %q", name)
		}
	}
	return nil
}

// setString заменяет значение, если переменная окружения задана
func setString(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
