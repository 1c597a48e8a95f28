package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(
		WithEnvFile(filepath.Join(t.TempDir(), "missing.env")),
		WithLookup(lookupFrom(map[string]string{
			"FIRESTORE_PROJECT_ID": "petra-home",
		})),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Firestore.ProjectID != "petra-home" {
		t.Fatalf("expected project id petra-home, got %q", cfg.Firestore.ProjectID)
	}
	if cfg.Firestore.DialTimeout != 10*time.Second {
		t.Fatalf("expected default dial timeout, got %v", cfg.Firestore.DialTimeout)
	}
	if cfg.Catalog.DefaultLanguage != "tr" {
		t.Fatalf("expected default language tr, got %q", cfg.Catalog.DefaultLanguage)
	}
	if !cfg.Catalog.LiveUpdates {
		t.Fatalf("expected live updates enabled by default")
	}
}

func TestLoadEnvFileFallback(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	contents := "# local overrides\nFIRESTORE_PROJECT_ID=from-file\nCATALOG_DEFAULT_LANGUAGE=\"en\"\nCATALOG_LIVE_UPDATES=off\n"
	if err := os.WriteFile(envFile, []byte(contents), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(
		WithEnvFile(envFile),
		WithLookup(lookupFrom(map[string]string{
			"CATALOG_DEFAULT_LANGUAGE": "tr",
		})),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Firestore.ProjectID != "from-file" {
		t.Fatalf("expected project id from file, got %q", cfg.Firestore.ProjectID)
	}
	if cfg.Catalog.DefaultLanguage != "tr" {
		t.Fatalf("expected process env to win, got %q", cfg.Catalog.DefaultLanguage)
	}
	if cfg.Catalog.LiveUpdates {
		t.Fatalf("expected live updates disabled via file")
	}
}

func TestLoadRejectsUnknownLanguage(t *testing.T) {
	_, err := Load(
		WithEnvFile(filepath.Join(t.TempDir(), "missing.env")),
		WithLookup(lookupFrom(map[string]string{
			"FIRESTORE_PROJECT_ID":     "petra-home",
			"CATALOG_DEFAULT_LANGUAGE": "de",
		})),
	)
	if err == nil {
		t.Fatalf("expected error for unsupported language")
	}
}

func TestLoadRequiresProject(t *testing.T) {
	_, err := Load(
		WithEnvFile(filepath.Join(t.TempDir(), "missing.env")),
		WithLookup(lookupFrom(map[string]string{})),
	)
	if err == nil {
		t.Fatalf("expected error when project id is missing")
	}
}
