package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("M3U_ADDR", "")
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" || cfg.Timeout != 15*time.Second || cfg.UserAgent != "FTP-to-M3U/1.0" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("M3U_ADDR", "")
	path := filepath.Join(t.TempDir(), "config.yml")
	writeFile(t, path, "addr: \":9000\"\ntimeout: 5s\nuser_agent: Custom/2.0\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9000" || cfg.Timeout != 5*time.Second || cfg.UserAgent != "Custom/2.0" {
		t.Fatalf("file not applied: %+v", cfg)
	}
	if cfg.MaxBodyBytes != defaultMaxBody {
		t.Fatalf("unset key should keep default, got %d", cfg.MaxBodyBytes)
	}
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yml")
	writeFile(t, path, "")
	if _, err := loadConfig(path); err != nil {
		t.Fatalf("empty file should be accepted: %v", err)
	}
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	writeFile(t, path, "adress: \":9000\"\n")
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("M3U_ADDR", "")
	t.Setenv("PORT", "7000")
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":7000" {
		t.Fatalf("PORT not applied: %q", cfg.Addr)
	}

	t.Setenv("M3U_ADDR", "127.0.0.1:7001")
	cfg, err = loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != "127.0.0.1:7001" {
		t.Fatalf("M3U_ADDR should win over PORT: %q", cfg.Addr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"blank user agent", func(c *Config) { c.UserAgent = "  " }},
		{"empty addr", func(c *Config) { c.Addr = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mod(&cfg)
			if err := cfg.validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
