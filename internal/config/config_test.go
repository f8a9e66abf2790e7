package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DATABASE_NAME")
	os.Unsetenv("DATABASE_TIMEOUT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Fatalf("unexpected default port: %q", cfg.Server.Port)
	}
	if cfg.Database.Name != "flames_site" {
		t.Fatalf("unexpected default database name: %q", cfg.Database.Name)
	}
	if cfg.Database.Timeout != 10*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.Database.Timeout)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "flames_test")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "9100" {
		t.Fatalf("unexpected port: %q", cfg.Server.Port)
	}
	if cfg.Database.URL == "" || cfg.Database.Name != "flames_test" {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}
}
