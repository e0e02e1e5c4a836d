// internal/api/preview/handlers.go
package preview

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/api/apiutil"
	"github.com/codr1/careerbuilder/internal/api/htmx"
	"github.com/codr1/careerbuilder/internal/models"
	device "github.com/codr1/careerbuilder/internal/preview"
	"github.com/codr1/careerbuilder/internal/statesync"
	"github.com/codr1/careerbuilder/internal/storage"
	previewtempl "github.com/codr1/careerbuilder/internal/templates/components/preview"
	"github.com/codr1/careerbuilder/internal/templates/components/public"
	"github.com/codr1/careerbuilder/internal/templates/layouts"
)

const storeTimeout = 5 * time.Second

type deviceResponse struct {
	Device  device.Device  `json:"device"`
	URL     string         `json:"url"`
	Metrics device.Metrics `json:"metrics"`
}

// Handlers serves the device preview. The simulated device lives in the
// session scope; the previewed snapshot is the live one.
type Handlers struct {
	sync       *statesync.Service
	sessions   *storage.SessionStore
	hub        *statesync.Hub
	sessionTTL time.Duration
}

func NewHandlers(syncService *statesync.Service, sessions *storage.SessionStore, hub *statesync.Hub, sessionTTL time.Duration) *Handlers {
	return &Handlers{sync: syncService, sessions: sessions, hub: hub, sessionTTL: sessionTTL}
}

func (h *Handlers) deviceContext(w http.ResponseWriter, r *http.Request) *device.DeviceContext {
	id, ok := storage.SessionIDFromContext(r.Context())
	if !ok {
		id = storage.SessionID(w, r, h.sessionTTL, r.TLS != nil)
	}
	return device.NewDeviceContext(h.sessions.Scoped(id))
}

func shareBase() *url.URL {
	return &url.URL{Path: previewtempl.PageURL}
}

// /preview
func (h *Handlers) HandlePreviewPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	dc := h.deviceContext(w, r)
	d, err := dc.Init(ctx, r.URL.Query())
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to restore preview device")
	}

	state, err := h.sync.LoadForBuilder(ctx)
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to load preview state")
		return
	}

	embed := r.URL.Query().Get("embed") == "1"
	scripts := previewtempl.ReloadScript
	if embed {
		// The builder reloads the frame itself.
		scripts = ""
	}
	page := layouts.Base(layouts.Page{
		Title:   "Preview | Careers",
		CSSVars: layouts.ThemeCSSVars(&state),
		Body:    previewtempl.Frame(frameData(state, d, embed)),
		Scripts: scripts,
	})
	apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render preview", "Failed to render preview")
}

// /preview/device
func (h *Handlers) HandleSelectDevice(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	d, err := device.LookupDevice(r.FormValue(device.QueryParam))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	share, err := h.deviceContext(w, r).Select(ctx, d, shareBase())
	if err != nil {
		if errors.Is(err, device.ErrUnknownDevice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		apiutil.WriteError(w, r, err, "Failed to save preview device")
		return
	}
	logger.Debug().Str("device", string(d)).Msg("Preview device selected")

	if !htmx.IsRequest(r) {
		resp := deviceResponse{Device: d, URL: share, Metrics: device.MetricsFor(d)}
		if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
			logger.Error().Err(err).Msg("Failed to write device response")
		}
		return
	}

	state, err := h.sync.LoadForBuilder(ctx)
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to load preview state")
		return
	}
	htmx.PushURL(w, share)
	apiutil.RenderHTMLComponent(r.Context(), w, previewtempl.Frame(frameData(state, d, false)), nil, "Failed to render preview frame", "Failed to render preview")
}

// /preview/ws
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r)
}

func frameData(state models.BuilderState, d device.Device, embed bool) previewtempl.FrameData {
	return previewtempl.FrameData{
		Device:    d,
		ShareURL:  device.ShareURL(shareBase(), d),
		SelectURL: previewtempl.SelectURL,
		Embed:     embed,
		Page: &public.PageData{
			State:    state,
			PageKey:  state.ActivePage,
			BasePath: "/p",
			FAQURL:   public.FAQURL(public.FAQSourceBuilder),
		},
	}
}
