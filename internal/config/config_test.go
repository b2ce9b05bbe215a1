package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOCIALHUB_AUTH_JWTSECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:3000" || cfg.Database.Path != "data/socialhub.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Storage.Driver != "local" || cfg.Storage.Dir != "uploads" || cfg.Storage.URLPrefix != "/uploads" {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.TokenTTL() != 24*time.Hour {
		t.Fatalf("unexpected ttl %s", cfg.TokenTTL())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SOCIALHUB_AUTH_JWTSECRET", "s3cret")
	t.Setenv("SOCIALHUB_SERVER_ADDR", ":9000")
	t.Setenv("SOCIALHUB_AUTH_TOKENTTLMINUTES", "15")
	t.Setenv("SOCIALHUB_STORAGE_DRIVER", "S3")
	t.Setenv("SOCIALHUB_STORAGE_BUCKET", "avatars")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("addr not overridden: %q", cfg.Server.Addr)
	}
	if cfg.TokenTTL() != 15*time.Minute {
		t.Fatalf("ttl not overridden: %s", cfg.TokenTTL())
	}
	if cfg.Storage.Driver != "s3" || cfg.Storage.Bucket != "avatars" {
		t.Fatalf("storage not overridden: %+v", cfg.Storage)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadLegacySecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "legacy")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.JWTSecret != "legacy" {
		t.Fatalf("expected SECRET_KEY fallback, got %q", cfg.Auth.JWTSecret)
	}
}

func TestValidateRequiresSecret(t *testing.T) {
	var cfg Config
	cfg.Auth.TokenTTLMinutes = 60
	cfg.Storage.Driver = "local"
	cfg.Storage.Dir = "uploads"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing secret to fail validation")
	}

	cfg.Auth.JWTSecret = "s"
	cfg.Storage.Driver = "ftp"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unknown driver to fail validation")
	}
}

func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line, key, value string
		ok               bool
	}{
		{`FOO=bar`, "FOO", "bar", true},
		{`export FOO="bar baz"`, "FOO", "bar baz", true},
		{`# comment`, "", "", false},
		{`=nokey`, "", "", false},
		{`   `, "", "", false},
	}
	for _, c := range cases {
		key, value, ok := parseEnvLine(c.line)
		if key != c.key || value != c.value || ok != c.ok {
			t.Fatalf("parseEnvLine(%q) = %q, %q, %v", c.line, key, value, ok)
		}
	}
}
