package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("API_KEY", "secret-key-123")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key-123")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestLoad_ProductionRequiresAPIKey(t *testing.T) {
	clearEnv()

	os.Setenv("ENV", "production")
	defer clearEnv()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() in production without API_KEY expected error, got none")
	}
	if !strings.Contains(err.Error(), "API_KEY") {
		t.Errorf("error = %v, want mention of API_KEY", err)
	}
}

func TestValidate_BadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string // substring the error should mention
	}{
		{"port zero", Config{Port: 0, Env: EnvDevelopment, LogLevel: "info", LogFormat: "text"}, "PORT"},
		{"port too large", Config{Port: 70000, Env: EnvDevelopment, LogLevel: "info", LogFormat: "text"}, "PORT"},
		{"unknown env", Config{Port: 8080, Env: "testing", LogLevel: "info", LogFormat: "text"}, "ENV"},
		{"unknown log level", Config{Port: 8080, Env: EnvDevelopment, LogLevel: "verbose", LogFormat: "text"}, "LOG_LEVEL"},
		{"unknown log format", Config{Port: 8080, Env: EnvDevelopment, LogLevel: "info", LogFormat: "xml"}, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error, got none")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	clearEnv()

	os.Setenv("PORT", "not-a-number")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want default 8080 for unparseable value", cfg.Port)
	}
}

func TestEnvHelpers(t *testing.T) {
	dev := Config{Env: EnvDevelopment}
	if !dev.IsDevelopment() || dev.IsProduction() {
		t.Error("development config misreported its environment")
	}

	prod := Config{Env: EnvProduction}
	if prod.IsDevelopment() || !prod.IsProduction() {
		t.Error("production config misreported its environment")
	}
}

// clearEnv removes all configuration env vars so tests start clean.
func clearEnv() {
	for _, key := range []string{"PORT", "ENV", "API_KEY", "LOG_LEVEL", "LOG_FORMAT"} {
		os.Unsetenv(key)
	}
}
