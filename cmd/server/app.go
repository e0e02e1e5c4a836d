// cmd/server/app.go
package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/config"
	"github.com/codr1/careerbuilder/internal/db"
	"github.com/codr1/careerbuilder/internal/presets"
	"github.com/codr1/careerbuilder/internal/ratelimit"
	"github.com/codr1/careerbuilder/internal/scheduler"
	"github.com/codr1/careerbuilder/internal/statesync"
	"github.com/codr1/careerbuilder/internal/storage"
)

// app owns every long-lived dependency the routes share.
type app struct {
	db        *db.DB
	local     *storage.LocalStore
	sessions  *storage.SessionStore
	hub       *statesync.Hub
	sync      *statesync.Service
	presets   presets.Set
	scheduler *scheduler.Service
	publish   *ratelimit.Limiter
	closed    bool
}

func newApp(cfg *config.Config) (*app, error) {
	database, err := db.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	set, err := presets.Builtin()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("load theme presets: %w", err)
	}

	a := &app{
		db:       database,
		local:    storage.NewLocalStore(database),
		sessions: storage.NewSessionStore(cfg.Builder.SessionTTL, nil),
		hub:      statesync.NewHub(),
		presets:  set,
	}
	revisions := statesync.NewRevisions(database)
	a.sync = statesync.NewService(a.local, statesync.Options{
		Revisions:     revisions,
		Notifier:      a.hub,
		StrictPublish: cfg.Builder.StrictPublish,
	})

	limits := ratelimit.DefaultConfig()
	limits.Cooldown = cfg.Builder.PublishCooldown
	limits.TrustProxy = cfg.App.TrustProxy
	a.publish = ratelimit.New(limits)

	a.scheduler, err = scheduler.New()
	if err != nil {
		a.Close()
		return nil, err
	}
	if err := scheduler.RegisterRevisionPruning(a.scheduler, revisions, statesync.KindPublished, cfg.Builder.PruneCron, cfg.Builder.RevisionRetention); err != nil {
		a.Close()
		return nil, fmt.Errorf("schedule revision pruning: %w", err)
	}
	a.scheduler.Start()

	log.Info().
		Str("database", cfg.Database.Filename).
		Int("presets", len(set.Presets)).
		Bool("strict_publish", cfg.Builder.StrictPublish).
		Msg("Application initialized")
	return a, nil
}

// Close releases everything newApp opened. It is safe to call twice.
func (a *app) Close() {
	if a.closed {
		return
	}
	a.closed = true

	var errs []error
	if a.scheduler != nil {
		errs = append(errs, a.scheduler.Stop())
	}
	if a.publish != nil {
		a.publish.Close()
	}
	a.hub.Close()
	a.sessions.Close()
	errs = append(errs, a.db.Close())
	if err := errors.Join(errs...); err != nil {
		log.Error().Err(err).Msg("Failed to close application cleanly")
	}
}
