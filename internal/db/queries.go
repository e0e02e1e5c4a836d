package db

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

type StorageEntry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

const getStorageEntry = `-- name: GetStorageEntry :one
SELECT key, value, updated_at FROM storage_entries WHERE key = ?
`

func (q *Queries) GetStorageEntry(ctx context.Context, key string) (StorageEntry, error) {
	row := q.db.QueryRowContext(ctx, getStorageEntry, key)
	var e StorageEntry
	err := row.Scan(&e.Key, &e.Value, &e.UpdatedAt)
	return e, err
}

const upsertStorageEntry = `-- name: UpsertStorageEntry :exec
INSERT INTO storage_entries (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

type UpsertStorageEntryParams struct {
	Key   string
	Value string
}

func (q *Queries) UpsertStorageEntry(ctx context.Context, arg UpsertStorageEntryParams) error {
	_, err := q.db.ExecContext(ctx, upsertStorageEntry, arg.Key, arg.Value)
	return err
}

const deleteStorageEntry = `-- name: DeleteStorageEntry :exec
DELETE FROM storage_entries WHERE key = ?
`

func (q *Queries) DeleteStorageEntry(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, deleteStorageEntry, key)
	return err
}

const clearStorageEntries = `-- name: ClearStorageEntries :exec
DELETE FROM storage_entries
`

func (q *Queries) ClearStorageEntries(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, clearStorageEntries)
	return err
}

type SnapshotRevision struct {
	ID         int64
	RevisionID string
	Kind       string
	Snapshot   string
	CreatedAt  time.Time
}

const insertSnapshotRevision = `-- name: InsertSnapshotRevision :exec
INSERT INTO snapshot_revisions (revision_id, kind, snapshot)
VALUES (?, ?, ?)
`

type InsertSnapshotRevisionParams struct {
	RevisionID string
	Kind       string
	Snapshot   string
}

func (q *Queries) InsertSnapshotRevision(ctx context.Context, arg InsertSnapshotRevisionParams) error {
	_, err := q.db.ExecContext(ctx, insertSnapshotRevision, arg.RevisionID, arg.Kind, arg.Snapshot)
	return err
}

const listSnapshotRevisions = `-- name: ListSnapshotRevisions :many
SELECT id, revision_id, kind, snapshot, created_at
FROM snapshot_revisions
WHERE kind = ?
ORDER BY id DESC
LIMIT ?
`

type ListSnapshotRevisionsParams struct {
	Kind  string
	Limit int64
}

// ListSnapshotRevisions returns the newest revisions of a kind first.
func (q *Queries) ListSnapshotRevisions(ctx context.Context, arg ListSnapshotRevisionsParams) ([]SnapshotRevision, error) {
	rows, err := q.db.QueryContext(ctx, listSnapshotRevisions, arg.Kind, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SnapshotRevision
	for rows.Next() {
		var r SnapshotRevision
		if err := rows.Scan(&r.ID, &r.RevisionID, &r.Kind, &r.Snapshot, &r.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getSnapshotRevision = `-- name: GetSnapshotRevision :one
SELECT id, revision_id, kind, snapshot, created_at
FROM snapshot_revisions
WHERE revision_id = ?
`

func (q *Queries) GetSnapshotRevision(ctx context.Context, revisionID string) (SnapshotRevision, error) {
	row := q.db.QueryRowContext(ctx, getSnapshotRevision, revisionID)
	var r SnapshotRevision
	err := row.Scan(&r.ID, &r.RevisionID, &r.Kind, &r.Snapshot, &r.CreatedAt)
	return r, err
}

const pruneSnapshotRevisions = `-- name: PruneSnapshotRevisions :execrows
DELETE FROM snapshot_revisions
WHERE kind = ?
  AND id NOT IN (
    SELECT id FROM snapshot_revisions
    WHERE kind = ?
    ORDER BY id DESC
    LIMIT ?
  )
`

type PruneSnapshotRevisionsParams struct {
	Kind string
	Keep int64
}

// PruneSnapshotRevisions deletes all but the newest Keep revisions of a kind.
func (q *Queries) PruneSnapshotRevisions(ctx context.Context, arg PruneSnapshotRevisionsParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, pruneSnapshotRevisions, arg.Kind, arg.Kind, arg.Keep)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
