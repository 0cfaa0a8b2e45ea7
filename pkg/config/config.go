// Package config loads ariel settings.
//
// Settings are layered; later sources win:
//
//  1. built-in defaults
//  2. the TOML file (ariel.toml), if it exists
//  3. a .env file in the working directory, if it exists
//  4. ARIEL_* environment variables
//
// A config file looks like:
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//
//	[render]
//	max_depth = 64
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/ariel/pkg/cache"
	"github.com/matzehuels/ariel/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "ariel"

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "ariel.toml"

// Cache backends.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Environment variables read by [Load].
const (
	EnvCacheBackend = "ARIEL_CACHE_BACKEND"
	EnvCacheDir     = "ARIEL_CACHE_DIR"
	EnvCacheTTL     = "ARIEL_CACHE_TTL"
	EnvRedisAddr    = "ARIEL_REDIS_ADDR"
	EnvRedisDB      = "ARIEL_REDIS_DB"
	EnvRedisPass    = "ARIEL_REDIS_PASSWORD"
	EnvServerAddr   = "ARIEL_SERVER_ADDR"
	EnvMaxDepth     = "ARIEL_MAX_DEPTH"
)

// Config holds all settings.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Render RenderConfig `toml:"render"`
}

type CacheConfig struct {
	Backend       string   `toml:"backend"`
	Dir           string   `toml:"dir"`
	TTL           Duration `toml:"ttl"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisDB       int      `toml:"redis_db"`
	RedisPassword string   `toml:"redis_password"`
	// Prefix scopes every cache key, e.g. per deployment.
	Prefix string `toml:"prefix"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `toml:"max_body_bytes"`
}

type RenderConfig struct {
	// MaxDepth limits nested custom component expansion; built-ins are
	// not counted. 0 is unlimited.
	MaxDepth int `toml:"max_depth"`
}

// Duration is a time.Duration decoded from strings like "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	dir, err := CacheDir()
	if err != nil {
		dir = ""
	}
	return &Config{
		Cache: CacheConfig{
			Backend: BackendFile,
			Dir:     dir,
			TTL:     Duration{cache.DefaultTTL},
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 1 << 20,
		},
	}
}

// Load reads settings from path. An empty path uses [DefaultFile]; a
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultFile
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	// .env is optional
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvCacheBackend); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.Cache.Dir = v
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		if err := c.Cache.TTL.UnmarshalText([]byte(v)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", EnvCacheTTL)
		}
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv(EnvRedisPass); v != "" {
		c.Cache.RedisPassword = v
	}
	if v := os.Getenv(EnvRedisDB); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", EnvRedisDB)
		}
		c.Cache.RedisDB = n
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvMaxDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", EnvMaxDepth)
		}
		c.Render.MaxDepth = n
	}
	return nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendNone, BackendMemory:
	case BackendFile:
		if c.Cache.Dir == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "file cache requires a directory")
		}
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "redis cache requires redis_addr")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (must be one of: none, memory, file, redis)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	if c.Render.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_depth must be >= 0")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_body_bytes must be positive")
	}
	return nil
}

// OpenCache creates the configured cache backend.
func (c *Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendMemory:
		return cache.NewMemoryCache(), nil
	case BackendFile:
		fc, err := cache.NewFileCache(c.Cache.Dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
}

// Keyer returns the cache keyer, scoped when a prefix is configured.
func (c *Config) Keyer() cache.Keyer {
	if c.Cache.Prefix != "" {
		return cache.NewScopedKeyer(nil, c.Cache.Prefix)
	}
	return cache.NewDefaultKeyer()
}

// CacheDir returns the cache directory using XDG standard (~/.cache/ariel/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
