package storage

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	SessionCookieName      = "career_builder_session"
	sessionCleanupInterval = 15 * time.Minute
)

// Clock allows tests to control session expiry.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type sessionRecord struct {
	values    map[string]string
	expiresAt time.Time
}

// SessionStore holds one key/value map per browser session. A session expires
// TTL after its last write or read; expired sessions read as empty.
type SessionStore struct {
	ttl   time.Duration
	clock Clock

	mu       sync.Mutex
	sessions map[string]*sessionRecord

	cleanupCtx    context.Context
	cleanupCancel context.CancelFunc
	cleanupOnce   sync.Once
	cleanupWg     sync.WaitGroup
}

func NewSessionStore(ttl time.Duration, clock Clock) *SessionStore {
	if clock == nil {
		clock = realClock{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &SessionStore{
		ttl:           ttl,
		clock:         clock,
		sessions:      make(map[string]*sessionRecord),
		cleanupCtx:    ctx,
		cleanupCancel: cancel,
	}
}

// Close stops the cleanup goroutine.
func (s *SessionStore) Close() {
	s.cleanupCancel()
	s.cleanupWg.Wait()
}

// Scoped returns the Store for one session id.
func (s *SessionStore) Scoped(sessionID string) Store {
	s.startCleanup()
	return &sessionScope{store: s, id: sessionID}
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) record(id string, create bool) *sessionRecord {
	now := s.clock.Now()
	rec := s.sessions[id]
	if rec != nil && !now.Before(rec.expiresAt) {
		delete(s.sessions, id)
		rec = nil
	}
	if rec == nil {
		if !create {
			return nil
		}
		rec = &sessionRecord{values: make(map[string]string)}
		s.sessions[id] = rec
	}
	rec.expiresAt = now.Add(s.ttl)
	return rec
}

func (s *SessionStore) startCleanup() {
	s.cleanupOnce.Do(func() {
		s.cleanupWg.Add(1)
		go func() {
			defer s.cleanupWg.Done()
			ticker := time.NewTicker(sessionCleanupInterval)
			defer ticker.Stop()
			for {
				select {
				case <-s.cleanupCtx.Done():
					return
				case <-ticker.C:
					s.cleanup()
				}
			}
		}()
	})
}

func (s *SessionStore) cleanup() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rec := range s.sessions {
		if !now.Before(rec.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

type sessionScope struct {
	store *SessionStore
	id    string
}

func (c *sessionScope) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	rec := c.store.record(c.id, false)
	if rec == nil {
		return "", false, nil
	}
	value, ok := rec.values[key]
	return value, ok, nil
}

func (c *sessionScope) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	c.store.record(c.id, true).values[key] = value
	return nil
}

func (c *sessionScope) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if rec := c.store.record(c.id, false); rec != nil {
		delete(rec.values, key)
	}
	return nil
}

func (c *sessionScope) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	delete(c.store.sessions, c.id)
	return nil
}

// SessionID returns the request's session id, issuing a new uuid cookie when
// the request has none or an unparseable one.
func SessionID(w http.ResponseWriter, r *http.Request, ttl time.Duration, secure bool) string {
	for _, cookie := range r.Cookies() {
		if cookie.Name != SessionCookieName {
			continue
		}
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
	// Later reads in this request see the same id.
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: id})
	return id
}

type sessionIDKey struct{}

func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the id placed by ContextWithSessionID.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(string)
	return id, ok && id != ""
}
