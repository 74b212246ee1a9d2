package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Database.Registry.Enabled() {
		t.Fatal("registry should be disabled without a host")
	}
	if cfg.Redis.Enabled() || cfg.RateLimit.Enabled {
		t.Fatal("rate limiting should be off by default")
	}
	if cfg.Simulation.MaxReadings != 5000 || cfg.Simulation.DefaultRange != "24h" {
		t.Fatalf("unexpected simulation defaults: %+v", cfg.Simulation)
	}
	if cfg.MQTT.TopicPrefix != "binsight/devices" {
		t.Fatalf("unexpected mqtt prefix %q", cfg.MQTT.TopicPrefix)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BINSIGHT_SERVER__PORT", "9191")
	t.Setenv("BINSIGHT_DATABASE__REGISTRY__HOST", "db.internal")
	t.Setenv("BINSIGHT_REDIS__HOST", "cache.internal")
	t.Setenv("BINSIGHT_RATELIMIT__ENABLED", "true")
	t.Setenv("BINSIGHT_RATELIMIT__WINDOW", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Fatalf("port %d, want 9191", cfg.Server.Port)
	}
	if !cfg.Database.Registry.Enabled() || cfg.Database.Registry.Host != "db.internal" {
		t.Fatalf("registry not picked up: %+v", cfg.Database.Registry)
	}
	if cfg.Redis.Addr() != "cache.internal:6379" {
		t.Fatalf("redis addr %q", cfg.Redis.Addr())
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Window != 30*time.Second {
		t.Fatalf("rate limit not picked up: %+v", cfg.RateLimit)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad range", map[string]string{"BINSIGHT_SIMULATION__DEFAULT_RANGE": "2w"}, "default_range"},
		{"no cap", map[string]string{"BINSIGHT_SIMULATION__MAX_READINGS": "0"}, "max_readings"},
		{"limit without redis", map[string]string{"BINSIGHT_RATELIMIT__ENABLED": "true"}, "redis host"},
		{"bad port", map[string]string{"BINSIGHT_SERVER__PORT": "70000"}, "port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binsight.yaml")
	content := `
server:
  port: 7000
simulation:
  default_range: 7d
  image_base_url: https://cdn.example.com/bins
mqtt:
  broker: mqtt.example.com:1883
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 7000 || cfg.Simulation.DefaultRange != "7d" {
		t.Fatalf("file values not applied: %+v %+v", cfg.Server, cfg.Simulation)
	}
	if cfg.MQTT.Broker != "mqtt.example.com:1883" {
		t.Fatalf("broker %q", cfg.MQTT.Broker)
	}
	if cfg.Simulation.MaxReadings != 5000 {
		t.Fatal("defaults should still apply to unset keys")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for an explicit missing file")
	}
}
