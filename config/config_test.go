package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("BUYNARY_SERVER_PORT")
		os.Unsetenv("BUYNARY_SERVER_ENVIRONMENT")
		os.Unsetenv("BUYNARY_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("BUYNARY_CATALOG_PATH")
		os.Unsetenv("BUYNARY_PIPELINE_ENABLE_DEBUG_LOGGING")
		os.Unsetenv("BUYNARY_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "http://localhost:*" {
			t.Errorf("Server.AllowedOrigins = %v, want [http://localhost:*]", cfg.Server.AllowedOrigins)
		}
		if cfg.Catalog.Path != "" {
			t.Errorf("Catalog.Path = %s, want empty (seed catalog)", cfg.Catalog.Path)
		}
		if cfg.Pipeline.EnableDebugLogging {
			t.Error("Pipeline.EnableDebugLogging = true, want false")
		}
		if cfg.RateLimit.PerIP != 120 {
			t.Errorf("RateLimit.PerIP = %d, want 120", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BUYNARY_SERVER_PORT", "9090")
		os.Setenv("BUYNARY_SERVER_ENVIRONMENT", "production")
		os.Setenv("BUYNARY_PIPELINE_ENABLE_DEBUG_LOGGING", "true")
		os.Setenv("BUYNARY_RATELIMIT_PER_IP", "200")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if !cfg.Pipeline.EnableDebugLogging {
			t.Error("Pipeline.EnableDebugLogging = false, want true")
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads catalog path from environment", func(t *testing.T) {
		cleanupEnv()
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		if err := os.WriteFile(path, []byte("stores: []\n"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		os.Setenv("BUYNARY_CATALOG_PATH", path)
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if cfg.Catalog.Path != path {
			t.Errorf("Catalog.Path = %s, want %s", cfg.Catalog.Path, path)
		}
	})

	t.Run("fails validation for invalid environment", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BUYNARY_SERVER_ENVIRONMENT", "staging")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid environment")
		}
	})

	t.Run("fails validation for negative rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BUYNARY_RATELIMIT_PER_IP", "-5")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for negative rate limit")
		}
	})

	t.Run("fails validation for unreadable catalog path", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BUYNARY_CATALOG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for unreadable catalog path")
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	chdir := func(t *testing.T, dir string) {
		t.Helper()
		old, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd() error = %v", err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("Chdir() error = %v", err)
		}
		t.Cleanup(func() { os.Chdir(old) })
	}

	t.Run("missing file is not an error", func(t *testing.T) {
		chdir(t, t.TempDir())

		if err := loadEnvFile(); err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil", err)
		}
	})

	t.Run("loads variables and skips comments", func(t *testing.T) {
		dir := t.TempDir()
		content := "# comment line\n\nBUYNARY_TEST_FROM_FILE=file-value\nnot a pair\n"
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		chdir(t, dir)
		os.Unsetenv("BUYNARY_TEST_FROM_FILE")
		defer os.Unsetenv("BUYNARY_TEST_FROM_FILE")

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}
		if got := os.Getenv("BUYNARY_TEST_FROM_FILE"); got != "file-value" {
			t.Errorf("BUYNARY_TEST_FROM_FILE = %q, want file-value", got)
		}
	})

	t.Run("existing environment wins over file entries", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BUYNARY_TEST_PRECEDENCE=file-value\n"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		chdir(t, dir)
		os.Setenv("BUYNARY_TEST_PRECEDENCE", "env-value")
		defer os.Unsetenv("BUYNARY_TEST_PRECEDENCE")

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}
		if got := os.Getenv("BUYNARY_TEST_PRECEDENCE"); got != "env-value" {
			t.Errorf("BUYNARY_TEST_PRECEDENCE = %q, want env-value", got)
		}
	})
}
