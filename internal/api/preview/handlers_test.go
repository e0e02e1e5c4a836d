package preview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codr1/careerbuilder/internal/models"
	device "github.com/codr1/careerbuilder/internal/preview"
	"github.com/codr1/careerbuilder/internal/statesync"
	"github.com/codr1/careerbuilder/internal/storage"
	"github.com/codr1/careerbuilder/internal/testutil"
)

const sessionTTL = time.Hour

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	database := testutil.NewTestDB(t)
	hub := statesync.NewHub()
	t.Cleanup(hub.Close)
	sessions := storage.NewSessionStore(sessionTTL, nil)
	t.Cleanup(sessions.Close)
	svc := statesync.NewService(storage.NewLocalStore(database), statesync.Options{Notifier: hub})
	return NewHandlers(svc, sessions, hub, sessionTTL)
}

// withSession gives the request a fixed session cookie and the context value
// the session middleware would set.
func withSession(req *http.Request, id string) *http.Request {
	req.AddCookie(&http.Cookie{Name: storage.SessionCookieName, Value: id})
	return req.WithContext(storage.ContextWithSessionID(req.Context(), id))
}

const sessionA = "7b0e6c36-5c55-4c1e-9a0c-3f7d4b3f1a01"
const sessionB = "2f1d9c7e-8a4b-4f6e-b1d2-6c3a5e7f9b02"

func TestPreviewPageResolvesDevice(t *testing.T) {
	h := newTestHandlers(t)

	tests := []struct {
		name   string
		target string
		want   device.Device
	}{
		{name: "default", target: "/preview", want: device.Desktop},
		{name: "query", target: "/preview?device=mobile", want: device.Mobile},
		{name: "invalid_query", target: "/preview?device=watch", want: device.Desktop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandlePreviewPage(rec, withSession(httptest.NewRequest(http.MethodGet, tt.target, nil), sessionA))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `data-device="`+string(tt.want)+`"`)
		})
	}
}

func TestSelectedDeviceIsPerSession(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/preview/device", strings.NewReader("device=tablet"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleSelectDevice(rec, withSession(req, sessionA))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp deviceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, device.Tablet, resp.Device)
	assert.Equal(t, "/preview?device=tablet", resp.URL)
	assert.Equal(t, "768px", resp.Metrics.FrameWidth)

	rec = httptest.NewRecorder()
	h.HandlePreviewPage(rec, withSession(httptest.NewRequest(http.MethodGet, "/preview", nil), sessionA))
	assert.Contains(t, rec.Body.String(), `data-device="tablet"`)

	rec = httptest.NewRecorder()
	h.HandlePreviewPage(rec, withSession(httptest.NewRequest(http.MethodGet, "/preview", nil), sessionB))
	assert.Contains(t, rec.Body.String(), `data-device="desktop"`)
}

func TestSelectDeviceHTMX(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/preview/device", strings.NewReader("device=mobile"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleSelectDevice(rec, withSession(req, sessionA))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/preview?device=mobile", rec.Header().Get("HX-Push-Url"))
	assert.Contains(t, rec.Body.String(), `id="preview-root"`)
}

func TestSelectUnknownDevice(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/preview/device", strings.NewReader("device=watch"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleSelectDevice(rec, withSession(req, sessionA))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmbedOmitsReloadScript(t *testing.T) {
	h := newTestHandlers(t)
	require.NoError(t, h.sync.Autosave(context.Background(), models.DefaultBuilderState()))

	rec := httptest.NewRecorder()
	h.HandlePreviewPage(rec, withSession(httptest.NewRequest(http.MethodGet, "/preview?embed=1", nil), sessionA))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "cb-device-button")
}
