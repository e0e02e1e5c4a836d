package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/codr1/careerbuilder/internal/db"
)

// LocalStore is the persistent scope, one row per key in storage_entries.
// Writes are last-write-wins.
type LocalStore struct {
	queries *db.Queries
}

func NewLocalStore(database *db.DB) *LocalStore {
	return &LocalStore{queries: database.Queries}
}

func (s *LocalStore) Get(ctx context.Context, key string) (string, bool, error) {
	entry, err := s.queries.GetStorageEntry(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *LocalStore) Set(ctx context.Context, key, value string) error {
	if err := s.queries.UpsertStorageEntry(ctx, db.UpsertStorageEntryParams{Key: key, Value: value}); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *LocalStore) Remove(ctx context.Context, key string) error {
	if err := s.queries.DeleteStorageEntry(ctx, key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (s *LocalStore) Clear(ctx context.Context) error {
	if err := s.queries.ClearStorageEntries(ctx); err != nil {
		return fmt.Errorf("clear local storage: %w", err)
	}
	return nil
}
