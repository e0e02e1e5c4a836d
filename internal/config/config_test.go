package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: careers
  port: 9090
database:
  driver: sqlite
  filename: /tmp/careers.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.App.Port)
	}
	if cfg.Builder.RevisionRetention != 20 {
		t.Fatalf("revision_retention = %d, want default 20", cfg.Builder.RevisionRetention)
	}
	if cfg.Builder.PruneCron != "0 3 * * *" {
		t.Fatalf("prune_cron = %q, want default", cfg.Builder.PruneCron)
	}
}

func TestLoadBuilderSection(t *testing.T) {
	path := writeConfig(t, `
app:
  name: careers
  port: 8080
database:
  driver: sqlite
  filename: /tmp/careers.db
builder:
  autosave_debounce: 250ms
  strict_publish: true
  publish_cooldown: 10s
  revision_retention: 3
  prune_cron: "*/15 * * * *"
  session_ttl: 2h
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := BuilderConfig{
		AutosaveDebounce:  250 * time.Millisecond,
		StrictPublish:     true,
		PublishCooldown:   10 * time.Second,
		RevisionRetention: 3,
		PruneCron:         "*/15 * * * *",
		SessionTTL:        2 * time.Hour,
	}
	if cfg.Builder != want {
		t.Fatalf("builder = %+v, want %+v", cfg.Builder, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "missing_name", mutate: func(c *Config) { c.App.Name = "" }, wantErr: true},
		{name: "missing_port", mutate: func(c *Config) { c.App.Port = 0 }, wantErr: true},
		{name: "turso_unsupported", mutate: func(c *Config) { c.Database.Driver = "turso" }, wantErr: true},
		{name: "missing_filename", mutate: func(c *Config) { c.Database.Filename = "" }, wantErr: true},
		{name: "bad_cron", mutate: func(c *Config) { c.Builder.PruneCron = "every day" }, wantErr: true},
		{name: "zero_retention", mutate: func(c *Config) { c.Builder.RevisionRetention = 0 }, wantErr: true},
		{name: "negative_cooldown", mutate: func(c *Config) { c.Builder.PublishCooldown = -time.Second }, wantErr: true},
		{name: "zero_session_ttl", mutate: func(c *Config) { c.Builder.SessionTTL = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/etc/careers.yaml")
	if got := Path(); got != "/etc/careers.yaml" {
		t.Fatalf("Path() = %q", got)
	}
	t.Setenv("CONFIG_PATH", "")
	if got := Path(); got != DefaultPath {
		t.Fatalf("Path() = %q, want %q", got, DefaultPath)
	}
}
