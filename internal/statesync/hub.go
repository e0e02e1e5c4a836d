package statesync

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/metrics"
)

const (
	subscriberBuffer = 8
	pingInterval     = 30 * time.Second
	writeTimeout     = 10 * time.Second
)

// Hub fans snapshot events out to live-preview subscribers. A subscriber
// that falls behind loses events rather than blocking writers; the preview
// only needs to know that something changed.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a subscriber. The returned cancel func must be called
// once the subscriber is done; the channel is closed by cancel or Close.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	h.subs[ch] = struct{}{}
	metrics.PreviewSubscribers.Set(float64(len(h.subs)))
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[ch]; ok {
				delete(h.subs, ch)
				close(ch)
				metrics.PreviewSubscribers.Set(float64(len(h.subs)))
			}
		})
	}
}

func (h *Hub) Notify(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close disconnects every subscriber. Later subscribers get a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subs {
		close(ch)
		delete(h.subs, ch)
	}
	metrics.PreviewSubscribers.Set(0)
}

// ServeWS upgrades the request and streams events as JSON until the client
// goes away or the hub closes. Client messages are ignored.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Preview websocket upgrade failed")
		return
	}
	defer conn.CloseNow()

	events, cancel := h.Subscribe()
	defer cancel()

	ctx := conn.CloseRead(r.Context())
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	logger.Debug().Msg("Preview subscriber connected")
	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("Preview subscriber disconnected")
			return
		case e, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			if err := write(ctx, conn, e); err != nil {
				logger.Debug().Err(err).Msg("Preview websocket write failed")
				return
			}
		case <-ticker.C:
			pingCtx, cancelPing := context.WithTimeout(ctx, writeTimeout)
			err := conn.Ping(pingCtx)
			cancelPing()
			if err != nil {
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, e Event) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, e)
}
