package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"civic-ai-orchestrator/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "secret-key")

	path := writeConfig(t, `
http_server:
  port: 9090
  mode: release
recognition:
  retry_attempts: 4
  retry_delay: 250ms
  providers:
    - name: vision
      enabled: true
      priority: 1
      api_key: vision-key
      timeout: 5s
    - name: gemini
      enabled: true
      priority: 2
      api_key: ${TEST_GEMINI_KEY}
      model: gemini-test
classifier:
  rules_path: /etc/app/rules.yaml
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 || cfg.HTTPServer.Mode != "release" {
		t.Errorf("unexpected http server config: %+v", cfg.HTTPServer)
	}
	if cfg.HTTPServer.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected default shutdown timeout, got %v", cfg.HTTPServer.ShutdownTimeout)
	}
	if cfg.Recognition.RetryAttempts != 4 || cfg.Recognition.RetryDelay != 250*time.Millisecond {
		t.Errorf("unexpected retry config: %+v", cfg.Recognition)
	}
	if len(cfg.Recognition.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.Recognition.Providers))
	}
	if p := cfg.Recognition.Providers[0]; p.Name != "vision" || p.Timeout != 5*time.Second || p.APIKey != "vision-key" {
		t.Errorf("unexpected vision provider: %+v", p)
	}
	if p := cfg.Recognition.Providers[1]; p.APIKey != "secret-key" || p.Model != "gemini-test" {
		t.Errorf("expected expanded api key, got %+v", p)
	}
	if cfg.Classifier.RulesPath != "/etc/app/rules.yaml" {
		t.Errorf("unexpected rules path: %s", cfg.Classifier.RulesPath)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected cors origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadFile_EnvProviders(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := config.LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found bool
	for _, p := range cfg.Recognition.Providers {
		if p.Name == "gemini" && p.APIKey == "from-env" && p.Enabled {
			found = true
		}
	}
	if !found {
		t.Errorf("expected gemini provider from env, got %+v", cfg.Recognition.Providers)
	}
}

func TestLoadFile_EnvVisionCredentialsJSON(t *testing.T) {
	t.Setenv("GOOGLE_VISION_CREDENTIALS_JSON", `{"type":"authorized_user"}`)

	cfg, err := config.LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found bool
	for _, p := range cfg.Recognition.Providers {
		if p.Name == "vision" && p.CredentialsJSON == `{"type":"authorized_user"}` && p.Enabled {
			found = true
		}
	}
	if !found {
		t.Errorf("expected vision provider from env, got %+v", cfg.Recognition.Providers)
	}
}

func TestLoadFile_CredentialsJSONKey(t *testing.T) {
	t.Setenv("TEST_VISION_JSON", `{"type":"authorized_user"}`)

	body := "recognition:\n  providers:\n    - name: vision\n      enabled: true\n      priority: 1\n      credentials_json: ${TEST_VISION_JSON}\n"
	cfg, err := config.LoadFile(writeConfig(t, body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Recognition.Providers) == 0 || cfg.Recognition.Providers[0].CredentialsJSON != `{"type":"authorized_user"}` {
		t.Errorf("expected credentials_json to expand, got %+v", cfg.Recognition.Providers)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"duplicate priority", `
recognition:
  providers:
    - {name: vision, enabled: true, priority: 1}
    - {name: gemini, enabled: true, priority: 1}
`},
		{"missing provider name", `
recognition:
  providers:
    - {enabled: true, priority: 1}
`},
		{"non positive priority", `
recognition:
  providers:
    - {name: vision, enabled: true, priority: 0}
`},
		{"bad max results", `
recognition:
  max_results: 0
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.LoadFile(writeConfig(t, tt.body)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
