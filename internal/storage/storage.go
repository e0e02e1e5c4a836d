// Package storage is the scoped key/value store behind the builder's
// snapshots and preferences. The local scope persists across restarts; the
// session scope lives only as long as a browser session.
package storage

import "context"

const (
	KeyPublished     = "career-page-builder-published"
	KeyLiveState     = "career-page-builder-state"
	KeyUITheme       = "career-builder-ui-theme"
	KeyPreviewDevice = "career-page-builder-preview-device"
)

// Store is one storage scope. Get reports ok=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
