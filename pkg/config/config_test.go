package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected dev env by default, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if cfg.Session.IdleTTL != 2*time.Hour {
		t.Fatalf("unexpected session ttl %v", cfg.Session.IdleTTL)
	}
	if cfg.Redis.Enabled {
		t.Fatal("redis should be disabled by default")
	}
	if cfg.Checkout.SubmitLimit != 5 || cfg.Checkout.SubmitWindow != time.Minute {
		t.Fatalf("unexpected checkout limits %+v", cfg.Checkout)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("unexpected metrics path %q", cfg.Metrics.Path)
	}
	if len(cfg.App.CORSOrigins) != 2 || cfg.App.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins %v", cfg.App.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "prod")
	t.Setenv(EnvPort, "9000")
	t.Setenv(EnvCatalogPath, "/etc/storefront/catalog.yaml")
	t.Setenv(EnvSessionTTL, "30m")
	t.Setenv("STOREFRONT_CORS_ORIGINS", "https://shop.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "9000" {
		t.Fatalf("unexpected port %q", cfg.App.Port)
	}
	if cfg.Catalog.Path != "/etc/storefront/catalog.yaml" {
		t.Fatalf("unexpected catalog path %q", cfg.Catalog.Path)
	}
	if cfg.Session.IdleTTL != 30*time.Minute {
		t.Fatalf("unexpected session ttl %v", cfg.Session.IdleTTL)
	}
	if len(cfg.App.CORSOrigins) != 1 || cfg.App.CORSOrigins[0] != "https://shop.example.com" {
		t.Fatalf("unexpected cors origins %v", cfg.App.CORSOrigins)
	}
}

func TestLoad_RedisEnabledRequiresTarget(t *testing.T) {
	t.Setenv(EnvRedisOn, "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when redis is enabled without url or address")
	}

	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
}

func TestLoad_RejectsNonPositiveSessionTTL(t *testing.T) {
	t.Setenv(EnvSessionTTL, "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero session ttl")
	}
}
