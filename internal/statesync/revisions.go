package statesync

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codr1/careerbuilder/internal/db"
	"github.com/codr1/careerbuilder/internal/metrics"
)

var (
	ErrNoRevisions      = errors.New("revision history not configured")
	ErrRevisionNotFound = errors.New("revision not found")
)

type Revision struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Snapshot  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type RevisionStore interface {
	Record(ctx context.Context, kind, snapshot string) (string, error)
	Get(ctx context.Context, id string) (Revision, error)
	List(ctx context.Context, kind string, limit int) ([]Revision, error)
	Prune(ctx context.Context, kind string, keep int) (int64, error)
}

// Revisions stores snapshot history in snapshot_revisions.
type Revisions struct {
	queries *db.Queries
}

func NewRevisions(database *db.DB) *Revisions {
	return &Revisions{queries: database.Queries}
}

func (r *Revisions) Record(ctx context.Context, kind, snapshot string) (string, error) {
	id := uuid.NewString()
	err := r.queries.InsertSnapshotRevision(ctx, db.InsertSnapshotRevisionParams{
		RevisionID: id,
		Kind:       kind,
		Snapshot:   snapshot,
	})
	if err != nil {
		return "", fmt.Errorf("record %s revision: %w", kind, err)
	}
	return id, nil
}

func (r *Revisions) Get(ctx context.Context, id string) (Revision, error) {
	row, err := r.queries.GetSnapshotRevision(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Revision{}, fmt.Errorf("%w: %s", ErrRevisionNotFound, id)
	}
	if err != nil {
		return Revision{}, fmt.Errorf("get revision %s: %w", id, err)
	}
	return revisionFromRow(row), nil
}

// List returns the newest revisions of kind first.
func (r *Revisions) List(ctx context.Context, kind string, limit int) ([]Revision, error) {
	rows, err := r.queries.ListSnapshotRevisions(ctx, db.ListSnapshotRevisionsParams{Kind: kind, Limit: int64(limit)})
	if err != nil {
		return nil, fmt.Errorf("list %s revisions: %w", kind, err)
	}
	out := make([]Revision, 0, len(rows))
	for _, row := range rows {
		out = append(out, revisionFromRow(row))
	}
	return out, nil
}

// Prune keeps the newest keep revisions of kind.
func (r *Revisions) Prune(ctx context.Context, kind string, keep int) (int64, error) {
	if keep < 1 {
		return 0, fmt.Errorf("prune %s revisions: keep must be at least 1, got %d", kind, keep)
	}
	n, err := r.queries.PruneSnapshotRevisions(ctx, db.PruneSnapshotRevisionsParams{Kind: kind, Keep: int64(keep)})
	if err != nil {
		return 0, fmt.Errorf("prune %s revisions: %w", kind, err)
	}
	metrics.RevisionsPrunedTotal.Add(float64(n))
	return n, nil
}

func revisionFromRow(row db.SnapshotRevision) Revision {
	return Revision{
		ID:        row.RevisionID,
		Kind:      row.Kind,
		Snapshot:  row.Snapshot,
		CreatedAt: row.CreatedAt,
	}
}
