package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const minimalConfig = `
bot:
  token: "123:abc"
database:
  url: "postgres://localhost/cocktails"
redis:
  url: "localhost:6379"
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Bot.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Bot.Workers)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.CocktailDB.BaseURL != "https://www.thecocktaildb.com/api/json/v1/1" {
		t.Errorf("base URL = %q", cfg.CocktailDB.BaseURL)
	}
	if cfg.CocktailDB.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.CocktailDB.Timeout)
	}
	if cfg.CocktailDB.CacheTTL != 5*time.Minute {
		t.Errorf("cache ttl = %v, want 5m", cfg.CocktailDB.CacheTTL)
	}
	if cfg.Admin.Port != 8081 {
		t.Errorf("admin port = %d, want 8081", cfg.Admin.Port)
	}
}

func TestLoadRequiresBotToken(t *testing.T) {
	cfg := `
database:
  url: "postgres://localhost/cocktails"
redis:
  url: "localhost:6379"
`
	if _, err := Load(writeConfig(t, cfg), false); err == nil {
		t.Error("expected error for missing bot.token")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	cfg := `
bot:
  token: "123:abc"
redis:
  url: "localhost:6379"
`
	if _, err := Load(writeConfig(t, cfg), false); err == nil {
		t.Error("expected error for missing database.url")
	}
}

func TestLoadSetsDevFlag(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig), true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Runtime.Dev {
		t.Error("dev flag not propagated")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false); err == nil {
		t.Error("expected error for missing file")
	}
}
