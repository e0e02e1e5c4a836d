// Package statesync keeps the builder, the live preview and the public page
// reading and writing the same snapshots.
//
// Two snapshots exist in local storage: the live (autosaved) state and the
// last published state. Reads never fail on a corrupt snapshot; the failure is
// logged and the snapshot is treated as absent.
package statesync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/metrics"
	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/snapshot"
	"github.com/codr1/careerbuilder/internal/storage"
)

var ErrValidation = errors.New("snapshot failed validation")

const (
	KindAutosave  = "autosave"
	KindPublished = "published"
)

// Notifier receives an Event after every successful write.
type Notifier interface {
	Notify(Event)
}

// Event announces that a stored snapshot changed.
type Event struct {
	Kind       string    `json:"kind"`
	RevisionID string    `json:"revisionId,omitempty"`
	At         time.Time `json:"at"`
}

type Options struct {
	Revisions     RevisionStore
	Notifier      Notifier
	StrictPublish bool
}

type Service struct {
	local     storage.Store
	revisions RevisionStore
	notifier  Notifier
	strict    bool
	now       func() time.Time
}

func NewService(local storage.Store, opts Options) *Service {
	return &Service{
		local:     local,
		revisions: opts.Revisions,
		notifier:  opts.Notifier,
		strict:    opts.StrictPublish,
		now:       time.Now,
	}
}

// LoadLive returns the autosaved snapshot, or nil when there is none.
func (s *Service) LoadLive(ctx context.Context) (*models.BuilderState, error) {
	return s.load(ctx, storage.KeyLiveState)
}

// LoadPublished returns the last published snapshot, or nil.
func (s *Service) LoadPublished(ctx context.Context) (*models.BuilderState, error) {
	return s.load(ctx, storage.KeyPublished)
}

// LoadForDirectPage prefers the live snapshot over the published one.
func (s *Service) LoadForDirectPage(ctx context.Context) (*models.BuilderState, error) {
	live, err := s.LoadLive(ctx)
	if err != nil || live != nil {
		return live, err
	}
	return s.LoadPublished(ctx)
}

// LoadForBuilder returns the live snapshot or a fresh default state.
func (s *Service) LoadForBuilder(ctx context.Context) (models.BuilderState, error) {
	live, err := s.LoadLive(ctx)
	if err != nil {
		return models.BuilderState{}, err
	}
	if live == nil {
		return models.DefaultBuilderState(), nil
	}
	return *live, nil
}

func (s *Service) load(ctx context.Context, key string) (*models.BuilderState, error) {
	text, ok, err := s.local.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	state, err := snapshot.Decode([]byte(text))
	if err != nil {
		metrics.SnapshotDecodeFailuresTotal.WithLabelValues(key).Inc()
		log.Ctx(ctx).Error().Err(err).Str("key", key).Msg("Stored snapshot is unreadable, treating as no state")
		return nil, nil
	}
	return &state, nil
}

// Autosave writes state as the live snapshot.
func (s *Service) Autosave(ctx context.Context, state models.BuilderState) error {
	data, err := snapshot.Encode(state)
	if err != nil {
		return err
	}
	if err := s.local.Set(ctx, storage.KeyLiveState, string(data)); err != nil {
		metrics.SnapshotWritesTotal.WithLabelValues(KindAutosave, "error").Inc()
		return fmt.Errorf("autosave: %w", err)
	}
	metrics.SnapshotWritesTotal.WithLabelValues(KindAutosave, "ok").Inc()
	s.notify(Event{Kind: KindAutosave})
	return nil
}

// Publish writes state as both the published and the live snapshot and
// records a revision. With strict publishing enabled, a state failing
// snapshot.Validate is rejected with ErrValidation and nothing is written.
func (s *Service) Publish(ctx context.Context, state models.BuilderState) (string, error) {
	logger := log.Ctx(ctx)

	if s.strict {
		if err := snapshot.Validate(state); err != nil {
			metrics.SnapshotWritesTotal.WithLabelValues(KindPublished, "invalid").Inc()
			return "", fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	data, err := snapshot.Encode(state)
	if err != nil {
		return "", err
	}
	if err := s.local.Set(ctx, storage.KeyPublished, string(data)); err != nil {
		metrics.SnapshotWritesTotal.WithLabelValues(KindPublished, "error").Inc()
		return "", fmt.Errorf("publish: %w", err)
	}
	if err := s.local.Set(ctx, storage.KeyLiveState, string(data)); err != nil {
		metrics.SnapshotWritesTotal.WithLabelValues(KindPublished, "error").Inc()
		return "", fmt.Errorf("publish live copy: %w", err)
	}
	metrics.SnapshotWritesTotal.WithLabelValues(KindPublished, "ok").Inc()

	var revisionID string
	if s.revisions != nil {
		revisionID, err = s.revisions.Record(ctx, KindPublished, string(data))
		if err != nil {
			// The publish itself succeeded; a missing revision only shortens history.
			logger.Error().Err(err).Msg("Failed to record publish revision")
		}
	}

	logger.Info().Str("revision_id", revisionID).Str("theme", state.ThemeName).Msg("Snapshot published")
	s.notify(Event{Kind: KindPublished, RevisionID: revisionID})
	return revisionID, nil
}

// Restore republishes a stored revision.
func (s *Service) Restore(ctx context.Context, revisionID string) (models.BuilderState, error) {
	if s.revisions == nil {
		return models.BuilderState{}, ErrNoRevisions
	}
	rev, err := s.revisions.Get(ctx, revisionID)
	if err != nil {
		return models.BuilderState{}, err
	}
	state, err := snapshot.Decode([]byte(rev.Snapshot))
	if err != nil {
		return models.BuilderState{}, fmt.Errorf("revision %s: %w", revisionID, err)
	}
	if _, err := s.Publish(ctx, state); err != nil {
		return models.BuilderState{}, err
	}
	return state, nil
}

// History lists recent revisions of kind, newest first.
func (s *Service) History(ctx context.Context, kind string, limit int) ([]Revision, error) {
	if s.revisions == nil {
		return nil, ErrNoRevisions
	}
	return s.revisions.List(ctx, kind, limit)
}

func (s *Service) notify(e Event) {
	if s.notifier == nil {
		return
	}
	e.At = s.now()
	s.notifier.Notify(e)
}
