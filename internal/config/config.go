package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverRedis    = "redis"
)

type Config struct {
	Port      string
	AppEnv    string
	JWTSecret string

	StoreDriver      string
	SQLitePath       string
	RedisStorePrefix string

	DB DatabaseConfig

	RedisAddr     string
	NotifyChannel string

	KafkaBroker        string
	OutboxPollInterval time.Duration
}

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env when present, then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("SQLITE_PATH", "go-leave.db")
	v.SetDefault("REDIS_STORE_PREFIX", "localstore:")
	v.SetDefault("NOTIFY_CHANNEL", "leave:storage")
	v.SetDefault("OUTBOX_POLL_INTERVAL", "3s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	return v
}

func FromViper(v *viper.Viper) Config {
	return Config{
		Port:               v.GetString("PORT"),
		AppEnv:             v.GetString("APP_ENV"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		StoreDriver:        strings.ToLower(v.GetString("STORE_DRIVER")),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		RedisStorePrefix:   v.GetString("REDIS_STORE_PREFIX"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		NotifyChannel:      v.GetString("NOTIFY_CHANNEL"),
		KafkaBroker:        v.GetString("KAFKA_BROKER"),
		OutboxPollInterval: v.GetDuration("OUTBOX_POLL_INTERVAL"),
		DB: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Port:     v.GetString("DB_PORT"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
	}
}
