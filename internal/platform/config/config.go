package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultEnvFile     = ".env"
	defaultLanguage    = "tr"
	defaultDialTimeout = 10 * time.Second
)

// Config captures runtime configuration organised by concern.
type Config struct {
	Firestore FirestoreConfig
	Catalog   CatalogConfig
}

// FirestoreConfig stores document-store connection parameters.
type FirestoreConfig struct {
	ProjectID    string
	EmulatorHost string
	DialTimeout  time.Duration
}

// CatalogConfig controls catalog behaviour.
type CatalogConfig struct {
	// DefaultLanguage is the BCP 47 tag views start in ("tr" or "en").
	DefaultLanguage string
	// LiveUpdates selects live-subscription mode over fetch-once polling.
	LiveUpdates bool
}

// Option customises loading behaviour.
type Option func(*loader)

type loader struct {
	envFile string
	lookup  func(string) (string, bool)
}

// WithEnvFile overrides the .env file consulted for defaults.
func WithEnvFile(path string) Option {
	return func(l *loader) {
		if strings.TrimSpace(path) != "" {
			l.envFile = path
		}
	}
}

// WithLookup overrides the environment lookup, primarily for tests.
func WithLookup(lookup func(string) (string, bool)) Option {
	return func(l *loader) {
		if lookup != nil {
			l.lookup = lookup
		}
	}
}

// Load assembles the configuration from the environment, falling back to
// values from the .env file when a variable is unset. Process environment
// always wins over file contents.
func Load(opts ...Option) (Config, error) {
	l := &loader{envFile: defaultEnvFile, lookup: os.LookupEnv}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	fileValues, err := readEnvFile(l.envFile)
	if err != nil {
		return Config{}, err
	}

	get := func(key string) string {
		if value, ok := l.lookup(key); ok {
			return strings.TrimSpace(value)
		}
		return strings.TrimSpace(fileValues[key])
	}

	cfg := Config{
		Firestore: FirestoreConfig{
			ProjectID:    get("FIRESTORE_PROJECT_ID"),
			EmulatorHost: get("FIRESTORE_EMULATOR_HOST"),
			DialTimeout:  defaultDialTimeout,
		},
		Catalog: CatalogConfig{
			DefaultLanguage: defaultLanguage,
			LiveUpdates:     true,
		},
	}

	if raw := get("FIRESTORE_DIAL_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid FIRESTORE_DIAL_TIMEOUT %q: %w", raw, err)
		}
		cfg.Firestore.DialTimeout = timeout
	}

	if raw := get("CATALOG_DEFAULT_LANGUAGE"); raw != "" {
		lang := strings.ToLower(raw)
		if lang != "tr" && lang != "en" {
			return Config{}, fmt.Errorf("config: unsupported CATALOG_DEFAULT_LANGUAGE %q", raw)
		}
		cfg.Catalog.DefaultLanguage = lang
	}

	if raw := get("CATALOG_LIVE_UPDATES"); raw != "" {
		switch strings.ToLower(raw) {
		case "1", "true", "yes", "on":
			cfg.Catalog.LiveUpdates = true
		case "0", "false", "no", "off":
			cfg.Catalog.LiveUpdates = false
		default:
			return Config{}, fmt.Errorf("config: invalid CATALOG_LIVE_UPDATES %q", raw)
		}
	}

	if cfg.Firestore.ProjectID == "" && cfg.Firestore.EmulatorHost == "" {
		return Config{}, fmt.Errorf("config: FIRESTORE_PROJECT_ID is required")
	}

	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	values := map[string]string{}
	if strings.TrimSpace(path) == "" {
		return values, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		if key != "" {
			values[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return values, nil
}
