package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SALT": "system-salt",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8000" || cfg.StateKey != "05" || cfg.Mongo.Database != "hercules" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Throttle.Limit != 20 || cfg.Throttle.Window != time.Minute {
		t.Fatalf("unexpected throttle defaults %+v", cfg.Throttle)
	}
	if cfg.APIKeyTTL != 90*24*time.Hour {
		t.Fatalf("unexpected key ttl %v", cfg.APIKeyTTL)
	}
	if len(cfg.Origins) != 1 || cfg.Origins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins %v", cfg.Origins)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("development is the default environment")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SALT":               "system-salt",
		"ENV":                "production",
		"ORIGINS":            "https://a.pjecz.gob.mx,https://b.pjecz.gob.mx",
		"AUTH_FAIL_WINDOW":   "5m",
		"ACCESS_LOG_WORKERS": "8",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.IsDevelopment() {
		t.Fatalf("expected production")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "https://b.pjecz.gob.mx" {
		t.Fatalf("unexpected origins %v", cfg.Origins)
	}
	if cfg.Throttle.Window != 5*time.Minute || cfg.AccessLog.Workers != 8 {
		t.Fatalf("overrides not applied %+v", cfg)
	}
}

func TestLoad_MissingSalt(t *testing.T) {
	if _, err := load(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected an error without SALT")
	}
}

func TestLoad_TrustedProxies(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SALT":            "system-salt",
		"TRUSTED_PROXIES": "10.0.0.0/8,192.0.2.7",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ranges, err := cfg.ProxyRanges()
	if err != nil {
		t.Fatalf("ProxyRanges: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("expected two ranges, got %v", ranges)
	}
	if ranges[1].String() != "192.0.2.7/32" {
		t.Fatalf("a bare address must be a single host, got %s", ranges[1])
	}
}

func TestLoad_NoTrustedProxiesByDefault(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"SALT": "s"}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ranges, err := cfg.ProxyRanges()
	if err != nil || len(ranges) != 0 {
		t.Fatalf("expected no trusted proxies, got %v %v", ranges, err)
	}
}

func TestLoad_InvalidTrustedProxy(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SALT":            "system-salt",
		"TRUSTED_PROXIES": "proxy.local",
	}))
	if err == nil {
		t.Fatalf("expected an error for a non-address proxy")
	}
}
