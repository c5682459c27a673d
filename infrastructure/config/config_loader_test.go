package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/netagent-io/netagent/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvHost, EnvUsername, EnvPassword, EnvEnablePassword, EnvAPIKey} {
		t.Setenv(key, "")
	}
}

func TestLoad_GlobalsMergeIntoDevices(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
transport: ssh
kind: cisco_ios
username: admin
password: secret
enable_password: enable
devices:
  - host: 10.0.0.1
  - host: 10.0.0.2
    kind: linux
    username: root
`)

	cfg, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(cfg.Devices) != 2 {
		t.Fatalf("Expected 2 devices, got %d", len(cfg.Devices))
	}

	first := cfg.Devices[0]
	if first.Username != "admin" || first.Password != "secret" || first.Kind != entities.KindCiscoIOS {
		t.Errorf("Globals should merge into first device, got %+v", first)
	}

	second := cfg.Devices[1]
	if second.Kind != entities.KindLinux {
		t.Errorf("Per-device kind should win, got %s", second.Kind)
	}
	if second.Username != "root" {
		t.Errorf("Per-device username should win, got %s", second.Username)
	}
	if second.Password != "secret" {
		t.Errorf("Global password should fill the gap, got %s", second.Password)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
username: admin
password: secret
devices:
  - host: 10.0.0.1
`)

	cfg, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Transport != "ssh" {
		t.Errorf("Expected default transport ssh, got %s", cfg.Transport)
	}
	if cfg.Kind != entities.KindCiscoIOS {
		t.Errorf("Expected default kind cisco_ios, got %s", cfg.Kind)
	}
	if cfg.SnmpCommunity != "public" {
		t.Errorf("Expected default community public, got %s", cfg.SnmpCommunity)
	}
}

func TestLoad_InvalidTransport(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
transport: serial
username: admin
password: secret
`)

	if _, err := Load(path, 0); err == nil {
		t.Error("Expected error for invalid transport")
	}
}

func TestLoad_InvalidKind(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
kind: junos
username: admin
password: secret
`)

	if _, err := Load(path, 0); err == nil {
		t.Error("Expected error for invalid kind")
	}
}

func TestLoad_MissingDeviceHost(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
username: admin
password: secret
devices:
  - username: other
`)

	if _, err := Load(path, 0); err == nil {
		t.Error("Expected error for device without host")
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
devices:
  - host: 10.0.0.1
`)

	if _, err := Load(path, 0); err == nil {
		t.Error("Expected error for device without credentials")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUsername, "envuser")
	t.Setenv(EnvPassword, "envpass")
	t.Setenv(EnvAPIKey, "key-123")

	path := writeConfig(t, `
username: admin
password: secret
devices:
  - host: 10.0.0.1
`)

	cfg, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Username != "envuser" {
		t.Errorf("Environment should override username, got %s", cfg.Username)
	}
	if cfg.Devices[0].Password != "envpass" {
		t.Errorf("Environment password should reach devices, got %s", cfg.Devices[0].Password)
	}
	if cfg.APIKey != "key-123" {
		t.Errorf("Expected API key from environment, got %s", cfg.APIKey)
	}
}

func TestFindDevice(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
username: admin
password: secret
devices:
  - host: 10.0.0.1
  - host: 10.0.0.2
`)

	cfg, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if creds, ok := cfg.FindDevice("10.0.0.2"); !ok || creds.Host != "10.0.0.2" {
		t.Errorf("Expected to find 10.0.0.2, got %+v ok=%v", creds, ok)
	}
	if _, ok := cfg.FindDevice("10.0.0.99"); ok {
		t.Error("Should not find unlisted device")
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "10.0.0.5")
	t.Setenv(EnvUsername, "admin")
	t.Setenv(EnvPassword, "secret")

	creds, err := FromEnv(1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if creds.Host != "10.0.0.5" {
		t.Errorf("Expected host from environment, got %s", creds.Host)
	}
	if creds.Kind != entities.KindCiscoIOS {
		t.Errorf("Expected default kind cisco_ios, got %s", creds.Kind)
	}
	if creds.VerbosityLevel != 1 {
		t.Errorf("Expected verbosity 1, got %d", creds.VerbosityLevel)
	}
}

func TestFromEnv_Incomplete(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "10.0.0.5")

	if _, err := FromEnv(0); err == nil {
		t.Error("Expected error when username is missing")
	}
}
