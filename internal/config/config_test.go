package config

import (
	"os"
	"testing"
)

type testOptions struct {
	Config string

	Port      string `toml:"server.port" env:"SERVER_PORT"`
	SysfsPath string `toml:"hardware.sysfs_path" env:"HARDWARE_SYSFS_PATH"`

	MetricsEnabled bool   `toml:"features.metrics_enabled" env:"FEATURES_METRICS"`
	LoggingLevel   string `toml:"logging.level" env:"LOGGING_LEVEL"`
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "lightsd_*.toml")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	tmpFile.Close()
	return tmpFile.Name()
}

func TestLoadConfigFromTOML(t *testing.T) {
	path := writeTempConfig(t, `
[server]
port = ":9090"

[hardware]
sysfs_path = "/tmp/leds"

[features]
metrics_enabled = true

[logging]
level = "debug"
`)

	opts := &testOptions{Config: path, Port: ":8089"}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if opts.Port != ":9090" {
		t.Errorf("Port = %q, want %q", opts.Port, ":9090")
	}
	if opts.SysfsPath != "/tmp/leds" {
		t.Errorf("SysfsPath = %q, want %q", opts.SysfsPath, "/tmp/leds")
	}
	if !opts.MetricsEnabled {
		t.Error("MetricsEnabled = false, want true")
	}
	if opts.LoggingLevel != "debug" {
		t.Errorf("LoggingLevel = %q, want %q", opts.LoggingLevel, "debug")
	}
}

func TestLoadConfigEnvOverridesTOML(t *testing.T) {
	path := writeTempConfig(t, `
[server]
port = ":9090"
`)

	t.Setenv("LIGHTSD_SERVER_PORT", ":7070")

	opts := &testOptions{Config: path}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if opts.Port != ":7070" {
		t.Errorf("Port = %q, want env override %q", opts.Port, ":7070")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	opts := &testOptions{Config: "/nonexistent/lightsd.toml", Port: ":8089"}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig with missing file returned error: %v", err)
	}
	if opts.Port != ":8089" {
		t.Errorf("Port = %q, want default %q kept", opts.Port, ":8089")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := writeTempConfig(t, "not valid toml [[[")

	opts := &testOptions{Config: path}
	if err := LoadConfig(opts, nil); err == nil {
		t.Error("LoadConfig accepted invalid TOML")
	}
}

func TestFieldNameToFlag(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"Port", "port"},
		{"SysfsPath", "sysfs-path"},
		{"LoggingLevel", "logging-level"},
		{"MDNSEnabled", "m-d-n-s-enabled"},
	}

	for _, tt := range tests {
		if got := fieldNameToFlag(tt.field); got != tt.want {
			t.Errorf("fieldNameToFlag(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestLoadLoggingConfig(t *testing.T) {
	path := writeTempConfig(t, `
[logging]
level = "warn"
format = "json"
hwlight = "debug"
api = "error"
`)

	cfg := LoadLoggingConfig(path)

	if cfg.Level != "warn" {
		t.Errorf("Level = %q, want %q", cfg.Level, "warn")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.Modules["hwlight"] != "debug" {
		t.Errorf("Modules[hwlight] = %q, want %q", cfg.Modules["hwlight"], "debug")
	}
	if cfg.Modules["api"] != "error" {
		t.Errorf("Modules[api] = %q, want %q", cfg.Modules["api"], "error")
	}
}

func TestLoadLoggingConfigDefaults(t *testing.T) {
	cfg := LoadLoggingConfig("/nonexistent/lightsd.toml")

	if cfg.Level != "info" || cfg.Format != "text" {
		t.Errorf("Defaults = %q/%q, want info/text", cfg.Level, cfg.Format)
	}
	if len(cfg.Modules) != 0 {
		t.Errorf("Modules = %v, want empty", cfg.Modules)
	}
}
