package config

import (
	"fmt"
	"strings"

	"github.com/focusnest/crafternoon/internal/shared/envconfig"
)

// Config encapsulates the runtime configuration for the hunt service and CLI.
type Config struct {
	Port      string `validate:"required,numeric"`
	LogLevel  string `validate:"oneof=debug info warn warning error"`
	DataStore DataStore
	File      FileConfig
	SQLite    SQLiteConfig
	Firestore FirestoreConfig
	HTTP      HTTPConfig
}

// DataStore enumerates supported persistence backends.
type DataStore string

const (
	// DataStoreMemory keeps progress in-memory (useful for local development/testing).
	DataStoreMemory DataStore = "memory"
	// DataStoreFile keeps one JSON document per browser context on disk.
	DataStoreFile DataStore = "file"
	// DataStoreSQLite keeps progress in a SQLite database.
	DataStoreSQLite DataStore = "sqlite"
	// DataStoreFirestore keeps progress in Google Cloud Firestore.
	DataStoreFirestore DataStore = "firestore"
)

// FileConfig configures the file backend.
type FileConfig struct {
	Dir string `validate:"required"`
}

// SQLiteConfig configures the sqlite backend.
type SQLiteConfig struct {
	Path string `validate:"required"`
}

// FirestoreConfig tailors Firestore client behavior.
type FirestoreConfig struct {
	ProjectID       string
	Database        string
	EmulatorHost    string
	CredentialsFile string
}

// HTTPConfig covers the browser-facing surface.
type HTTPConfig struct {
	AllowedOrigins []string `validate:"min=1,dive,required"`
	SecureCookies  bool
	// SessionLimit bounds the browser contexts kept in memory.
	SessionLimit int `validate:"gte=1"`
}

// Load reads environment variables (seeded from .env when present) into Config with validation.
func Load() (Config, error) {
	if err := envconfig.LoadDotEnv(); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:      envconfig.Get("PORT", "8080"),
		LogLevel:  strings.ToLower(envconfig.Get("LOG_LEVEL", "info")),
		DataStore: DataStore(strings.ToLower(envconfig.Get("DATASTORE", string(DataStoreFile)))),
		File: FileConfig{
			Dir: envconfig.Get("DATA_DIR", "data"),
		},
		SQLite: SQLiteConfig{
			Path: envconfig.Get("SQLITE_PATH", "data/hunt.db"),
		},
		Firestore: FirestoreConfig{
			ProjectID:       envconfig.Get("GCP_PROJECT_ID", ""),
			Database:        envconfig.Get("FIRESTORE_DATABASE", ""),
			EmulatorHost:    envconfig.Get("FIRESTORE_EMULATOR_HOST", ""),
			CredentialsFile: envconfig.Get("FIRESTORE_CREDENTIALS_FILE", ""),
		},
		HTTP: HTTPConfig{
			AllowedOrigins: envconfig.GetList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			SecureCookies:  envconfig.GetBool("COOKIE_SECURE", false),
			SessionLimit:   envconfig.GetInt("SESSION_LIMIT", 4096),
		},
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if err := envconfig.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch cfg.DataStore {
	case DataStoreMemory, DataStoreFile, DataStoreSQLite:
		// no-op
	case DataStoreFirestore:
		if cfg.Firestore.ProjectID == "" {
			return fmt.Errorf("gcp project id required when datastore=firestore")
		}
	default:
		return fmt.Errorf("unsupported datastore: %s", cfg.DataStore)
	}

	return nil
}
