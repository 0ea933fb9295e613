// Package datastore opens the progress repository selected by configuration.
package datastore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/focusnest/crafternoon/internal/config"
	"github.com/focusnest/crafternoon/internal/progress"
)

// Open returns the configured repository and a cleanup func that releases it.
func Open(ctx context.Context, cfg config.Config) (progress.Repository, func(), error) {
	switch cfg.DataStore {
	case config.DataStoreFirestore:
		return openFirestore(ctx, cfg.Firestore)
	case config.DataStoreSQLite:
		repo, err := progress.OpenSQLite(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil
	case config.DataStoreFile:
		repo, err := progress.NewFileRepository(cfg.File.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("file store: %w", err)
		}
		return repo, func() {}, nil
	default:
		return progress.NewMemoryRepository(), func() {}, nil
	}
}

func openFirestore(ctx context.Context, cfg config.FirestoreConfig) (progress.Repository, func(), error) {
	if cfg.EmulatorHost != "" {
		if err := os.Setenv("FIRESTORE_EMULATOR_HOST", cfg.EmulatorHost); err != nil {
			return nil, nil, fmt.Errorf("set FIRESTORE_EMULATOR_HOST: %w", err)
		}
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	database := cfg.Database
	if database == "" {
		database = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectID, database, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("firestore client: %w", err)
	}

	repo := progress.NewFirestoreRepository(client)
	cleanup := func() {
		_ = client.Close()
	}
	return repo, cleanup, nil
}
