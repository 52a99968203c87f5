// Package config arma la configuración del servicio a partir de variables
// de entorno (y de un .env, si existe).
//
// Las claves usan el prefijo DOGS_ y "__" para anidar:
//
//	DOGS_HTTP__PORT=8080       -> http.port
//	DOGS_AUTH__JWT_SECRET=...  -> auth.jwt_secret
//
// PORT y DB_DSN se siguen aceptando cuando no hay clave con prefijo.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "DOGS_"
	nestSep   = "__"
)

const (
	AuthDev    = "dev"
	AuthJWT    = "jwt"
	AuthRemote = "remote"
)

type Config struct {
	App      AppConfig      `koanf:"app" validate:"required"`
	HTTP     HTTPConfig     `koanf:"http" validate:"required"`
	Log      LogConfig      `koanf:"log"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Auth     AuthConfig     `koanf:"auth" validate:"required"`
	Seed     SeedConfig     `koanf:"seed"`
}

type AppConfig struct {
	Name string `koanf:"name" validate:"required"`
	Env  string `koanf:"env" validate:"required"`
}

type HTTPConfig struct {
	Port            string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

// DatabaseConfig: DSN vacío = store en memoria.
type DatabaseConfig struct {
	DSN            string `koanf:"dsn"`
	MaxConns       int32  `koanf:"max_conns" validate:"gte=0"`
	MigrateOnStart bool   `koanf:"migrate_on_start"`
}

// RedisConfig: Addr vacío = sin cache de catálogo.
type RedisConfig struct {
	Addr       string        `koanf:"addr" validate:"omitempty,hostname_port"`
	Password   string        `koanf:"password"`
	DB         int           `koanf:"db" validate:"gte=0"`
	CatalogTTL time.Duration `koanf:"catalog_ttl" validate:"gte=0"`
}

type AuthConfig struct {
	Mode          string        `koanf:"mode" validate:"required,oneof=dev jwt remote"`
	JWTSecret     string        `koanf:"jwt_secret" validate:"required_if=Mode jwt"`
	JWTIssuer     string        `koanf:"jwt_issuer"`
	TokenTTL      time.Duration `koanf:"token_ttl" validate:"gt=0"`
	RemoteURL     string        `koanf:"remote_url" validate:"required_if=Mode remote"`
	RemoteAPIKey  string        `koanf:"remote_api_key" validate:"required_if=Mode remote"`
	RemoteTimeout time.Duration `koanf:"remote_timeout" validate:"gte=0"`
}

type SeedConfig struct {
	OnStart bool   `koanf:"on_start"`
	File    string `koanf:"file"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.name": "dogs-registry",
		"app.env":  "development",

		"http.port":             "8080",
		"http.read_timeout":     15 * time.Second,
		"http.write_timeout":    15 * time.Second,
		"http.idle_timeout":     60 * time.Second,
		"http.shutdown_timeout": 10 * time.Second,

		"log.level":  "info",
		"log.format": "text",

		"database.max_conns":        int32(10),
		"database.migrate_on_start": false,

		"redis.db":          0,
		"redis.catalog_ttl": 10 * time.Minute,

		"auth.mode":           AuthDev,
		"auth.jwt_issuer":     "dogs-registry",
		"auth.token_ttl":      24 * time.Hour,
		"auth.remote_timeout": 5 * time.Second,

		"seed.on_start": false,
	}
}

// envKey: DOGS_HTTP__READ_TIMEOUT -> http.read_timeout
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, nestSep, ".")
}

// Load lee defaults + entorno, valida y devuelve la config.
func Load() (*Config, error) {
	k := koanf.New(".")

	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("config default %s: %w", key, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	// Variables sin prefijo que ya usaban los despliegues anteriores.
	legacy := map[string]string{
		"PORT":   "http.port",
		"DB_DSN": "database.dsn",
	}
	for name, key := range legacy {
		if _, set := os.LookupEnv(envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", nestSep))); set {
			continue
		}
		if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
			if err := k.Set(key, strings.TrimSpace(v)); err != nil {
				return nil, fmt.Errorf("config %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Auth.Mode = strings.ToLower(strings.TrimSpace(cfg.Auth.Mode))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Addr es la dirección de escucha del server HTTP.
func (c *Config) Addr() string {
	return ":" + c.HTTP.Port
}

func (c *Config) UsePostgres() bool {
	return strings.TrimSpace(c.Database.DSN) != ""
}

func (c *Config) UseRedis() bool {
	return strings.TrimSpace(c.Redis.Addr) != ""
}

var ErrNoDatabase = errors.New("database.dsn (DOGS_DATABASE__DSN or DB_DSN) is required")

// RequireDatabase lo usan los comandos que sólo tienen sentido con Postgres.
func (c *Config) RequireDatabase() error {
	if !c.UsePostgres() {
		return ErrNoDatabase
	}
	return nil
}
