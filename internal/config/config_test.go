package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/mediconnect")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("default port: got %q", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.JWTTTL() != 24*time.Hour {
		t.Errorf("default token ttl: got %v", cfg.JWTTTL())
	}
	if cfg.DBMaxConns != 20 {
		t.Errorf("default max conns: got %d", cfg.DBMaxConns)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without DATABASE_URL")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/mediconnect")
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("JWT_TTL_HOURS", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port override: got %q", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected production env")
	}
	if cfg.JWTTTL() != time.Hour {
		t.Errorf("ttl override: got %v", cfg.JWTTTL())
	}
}

func TestValidate(t *testing.T) {
	base := Config{Env: "development", JWTTTLHours: 24}

	if err := base.Validate(); err != nil {
		t.Errorf("dev without secret should validate, got %v", err)
	}

	prod := Config{Env: "production", JWTTTLHours: 24, SMTPHost: "smtp.example.com"}
	if err := prod.Validate(); err == nil {
		t.Error("production without JWT_SECRET must fail validation")
	}

	prod.JWTSecret = "0123456789abcdef0123456789abcdef"
	if err := prod.Validate(); err != nil {
		t.Errorf("production with secret and smtp should validate, got %v", err)
	}

	prod.SMTPHost = ""
	if err := prod.Validate(); err == nil {
		t.Error("production without SMTP_HOST must fail validation")
	}

	bad := Config{Env: "development", JWTTTLHours: 0}
	if err := bad.Validate(); err == nil {
		t.Error("non-positive token ttl must fail validation")
	}
}
