package config

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT, default=8000"`
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Salt is the system salt of the identifier codec. Changing it
	// invalidates every issued API key.
	Salt     string   `env:"SALT, required"`
	Origins  []string `env:"ORIGINS, default=http://localhost:3000"`
	StateKey string   `env:"ESTADO_CLAVE, default=05"`

	// TrustedProxies lists the CIDRs of reverse proxies whose
	// X-Forwarded-For entries are believed. Empty means the service faces
	// clients directly and only the socket address counts.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Throttle  ThrottleConfig
	AccessLog AccessLogConfig

	APIKeyTTL time.Duration `env:"API_KEY_TTL, default=2160h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB, default=hercules"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type ThrottleConfig struct {
	Limit  int           `env:"AUTH_FAIL_LIMIT, default=20"`
	Window time.Duration `env:"AUTH_FAIL_WINDOW, default=1m"`
}

type AccessLogConfig struct {
	Workers int `env:"ACCESS_LOG_WORKERS, default=4"`
}

// IsDevelopment reports whether human-friendly logs should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ProxyRanges parses TrustedProxies. A bare address is taken as a single
// host.
func (c *Config) ProxyRanges() ([]*net.IPNet, error) {
	ranges := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, raw := range c.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			ip := net.ParseIP(raw)
			if ip == nil {
				return nil, fmt.Errorf("config: TRUSTED_PROXIES: invalid address %q", raw)
			}
			bits := 32
			if ip.To4() == nil {
				bits = 128
			}
			raw = fmt.Sprintf("%s/%d", raw, bits)
		}
		_, ipNet, err := net.ParseCIDR(raw)
		if err != nil {
			return nil, fmt.Errorf("config: TRUSTED_PROXIES: %w", err)
		}
		ranges = append(ranges, ipNet)
	}
	return ranges, nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.ProxyRanges(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
