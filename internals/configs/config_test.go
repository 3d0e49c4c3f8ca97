package configs

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "JWT_SECRET", "SECRET_KEY", "ACCESS_TOKEN_TTL_HOURS", "DB_DRIVER", "DB_PORT", "CORS_ORIGINS", "RATE_LIMIT_ENABLED", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "3000" || cfg.DBDriver != "postgres" || cfg.DBPort != "5432" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.AccessTokenTTL != 24*time.Hour || !cfg.RateLimitEnabled {
		t.Fatalf("ttl/limiter: %v %v", cfg.AccessTokenTTL, cfg.RateLimitEnabled)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("cors: %v", cfg.CORSOrigins)
	}
	if len(cfg.TrustedProxies) != 0 {
		t.Fatalf("no proxy should be trusted by default: %v", cfg.TrustedProxies)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SECRET_KEY", "legacy")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_PORT", "")
	t.Setenv("ACCESS_TOKEN_TTL_HOURS", "abc")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.1")

	cfg := Load()
	if cfg.JWTSecret != "legacy" {
		t.Fatalf("secret alias: %q", cfg.JWTSecret)
	}
	if cfg.DBDriver != "mysql" || cfg.DBPort != "3306" {
		t.Fatalf("mysql defaults: %s:%s", cfg.DBDriver, cfg.DBPort)
	}
	if cfg.AccessTokenTTL != 24*time.Hour {
		t.Fatalf("bad ttl should fall back: %v", cfg.AccessTokenTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.RateLimitEnabled {
		t.Fatalf("cors/limiter: %v %v", cfg.CORSOrigins, cfg.RateLimitEnabled)
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[0] != "10.0.0.0/8" || cfg.TrustedProxies[1] != "172.16.0.1" {
		t.Fatalf("proxies: %v", cfg.TrustedProxies)
	}
}
