// internal/api/builder/handlers.go
package builder

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/api/apiutil"
	"github.com/codr1/careerbuilder/internal/loader"
	"github.com/codr1/careerbuilder/internal/presets"
	"github.com/codr1/careerbuilder/internal/statesync"
	"github.com/codr1/careerbuilder/internal/storage"
	buildertempl "github.com/codr1/careerbuilder/internal/templates/components/builder"
	"github.com/codr1/careerbuilder/internal/templates/layouts"
	"github.com/codr1/careerbuilder/internal/uitheme"
)

const (
	storeTimeout   = 5 * time.Second
	shellPollWait  = 2 * time.Second
	pageParam      = "page"
	sectionParam   = "section"
	revisionParam  = "id"
	revisionsLimit = 20
)

// Handlers serves the builder shell and every edit endpoint. Edits load the
// live snapshot, apply one change and autosave the result.
type Handlers struct {
	sync     *statesync.Service
	local    storage.Store
	presets  presets.Set
	debounce time.Duration
	loader   *loader.Loader

	mu      sync.Mutex
	pending <-chan loader.Result
	result  *loader.Result
}

func NewHandlers(syncService *statesync.Service, local storage.Store, set presets.Set, autosaveDebounce time.Duration) *Handlers {
	h := &Handlers{
		sync:     syncService,
		local:    local,
		presets:  set,
		debounce: autosaveDebounce,
	}
	h.loader = loader.New(h.loadEditor)
	return h
}

func (h *Handlers) loadEditor(ctx context.Context) (templ.Component, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	state, err := h.sync.LoadForBuilder(ctx)
	if err != nil {
		return nil, err
	}
	return buildertempl.Editor(buildertempl.NewEditorData(state, h.presets, h.debounce)), nil
}

// startLoad supersedes any in-flight load. The load outlives the request
// that started it but keeps its logger.
func (h *Handlers) startLoad(ctx context.Context) {
	pending := h.loader.Load(context.WithoutCancel(ctx))
	h.mu.Lock()
	h.pending = pending
	h.result = nil
	h.mu.Unlock()
}

// awaitShell waits up to wait for the current load. It reports false while
// the load is still running or when nothing has been started.
func (h *Handlers) awaitShell(ctx context.Context, wait time.Duration) (loader.Result, bool, bool) {
	h.mu.Lock()
	if h.result != nil {
		res := *h.result
		h.mu.Unlock()
		return res, true, true
	}
	pending := h.pending
	h.mu.Unlock()
	if pending == nil {
		return loader.Result{}, false, false
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case res, ok := <-pending:
		h.mu.Lock()
		defer h.mu.Unlock()
		if ok && h.pending == pending {
			h.result = &res
			h.pending = nil
			return res, true, true
		}
		if h.result != nil {
			return *h.result, true, true
		}
	case <-timer.C:
	case <-ctx.Done():
	}
	return loader.Result{}, false, true
}

// /builder
func (h *Handlers) HandleBuilderPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	chrome := uitheme.NewContext(h.local)
	mode, err := chrome.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to load builder theme, using default")
	}

	h.startLoad(r.Context())

	page := layouts.Base(layouts.Page{
		Title:     "Career Page Builder",
		BodyClass: mode.ChromeClass(),
		CSSVars:   layouts.ThemeCSSVars(nil),
		Body:      buildertempl.Page(buildertempl.NewChromeData(mode)),
		Scripts:   buildertempl.PreviewScript,
	})
	apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render builder page", "Failed to render builder")
}

// /builder/shell
func (h *Handlers) HandleShell(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	res, done, started := h.awaitShell(r.Context(), shellPollWait)
	if !started {
		h.startLoad(r.Context())
	}
	if !done {
		apiutil.RenderHTMLComponent(r.Context(), w, buildertempl.Loading(), nil, "Failed to render loading screen", "Failed to render builder")
		return
	}
	if res.Err != nil {
		logger.Error().Err(res.Err).Msg("Builder failed to load")
		apiutil.RenderHTMLComponent(r.Context(), w, buildertempl.Retry(res.Err.Error()), nil, "Failed to render retry screen", "Failed to render builder")
		return
	}
	apiutil.RenderHTMLComponent(r.Context(), w, buildertempl.Shell(res.Component), nil, "Failed to render builder shell", "Failed to render builder")
}

// /builder/shell/retry
func (h *Handlers) HandleShellRetry(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Info().Msg("Retrying builder load")
	h.startLoad(r.Context())
	apiutil.RenderHTMLComponent(r.Context(), w, buildertempl.Loading(), nil, "Failed to render loading screen", "Failed to render builder")
}
