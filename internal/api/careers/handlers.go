// internal/api/careers/handlers.go
package careers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/api/apiutil"
	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/sections"
	"github.com/codr1/careerbuilder/internal/statesync"
	"github.com/codr1/careerbuilder/internal/style"
	"github.com/codr1/careerbuilder/internal/templates/components/public"
	"github.com/codr1/careerbuilder/internal/templates/layouts"
)

const (
	storeTimeout  = 5 * time.Second
	pageParam     = "page"
	sourceParam   = "source"
	publishedPath = "/published"
	directPath    = "/p"
)

// Handlers serves the public careers page from stored snapshots.
type Handlers struct {
	sync *statesync.Service
}

func NewHandlers(syncService *statesync.Service) *Handlers {
	return &Handlers{sync: syncService}
}

// /published and /published/{page}
func (h *Handlers) HandlePublished(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	state, err := h.sync.LoadPublished(ctx)
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to load published page")
		return
	}
	if state == nil {
		renderFallback(w, r, http.StatusOK, "Not yet published", "This careers page has not been published yet.")
		return
	}
	h.renderPage(w, r, *state, publishedPath, public.FAQSourcePublished)
}

// /p and /p/{page}
//
// The direct link prefers the live snapshot so it always matches the editor.
func (h *Handlers) HandleDirect(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	state, err := h.sync.LoadForDirectPage(ctx)
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to load career page")
		return
	}
	if state == nil {
		renderFallback(w, r, http.StatusOK, "No career page yet", "No saved career page state was found. Open the builder to create one.")
		return
	}
	h.renderPage(w, r, *state, directPath, public.FAQSourceDirect)
}

func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, state models.BuilderState, basePath, faqSource string) {
	key := r.PathValue(pageParam)
	if key == "" {
		key = state.ActivePage
	}
	if !state.Pages.Has(key) {
		log.Ctx(r.Context()).Debug().Str("page", key).Msg("Unknown career page")
		renderFallback(w, r, http.StatusNotFound, "Page not found", "This careers page does not exist.")
		return
	}

	data := public.PageData{State: state, PageKey: key, BasePath: basePath, FAQURL: public.FAQURL(faqSource)}
	page := layouts.Base(layouts.Page{
		Title:   state.PageLabel(key) + " | Careers",
		CSSVars: layouts.ThemeCSSVars(&state),
		Body:    public.CareerPage(data),
	})
	apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render career page", "Failed to render page")
}

func renderFallback(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	page := layouts.Base(layouts.Page{
		Title:   title,
		CSSVars: layouts.ThemeCSSVars(nil),
		Body:    public.Fallback(title, message),
	})
	apiutil.RenderHTMLComponentStatus(r.Context(), w, status, page, nil, "Failed to render fallback page", "Failed to render page")
}

// /api/v1/sections/faq/{source}?current=j&toggle=i
//
// source names the snapshot the page was rendered from; the fragment reads
// the same one.
func (h *Handlers) HandleFAQ(w http.ResponseWriter, r *http.Request) {
	source := r.PathValue(sourceParam)
	load, ok := h.faqLoader(source)
	if !ok {
		http.Error(w, "unknown FAQ source", http.StatusNotFound)
		return
	}

	query := r.URL.Query()
	current, err := intParam(query.Get("current"), -1)
	if err != nil {
		http.Error(w, "current must be an integer", http.StatusBadRequest)
		return
	}
	toggle, err := intParam(query.Get("toggle"), -1)
	if err != nil || toggle >= len(sections.SampleFAQ()) {
		http.Error(w, "toggle must be a FAQ item index", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	state, err := load(ctx)
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to load career page")
		return
	}
	if state == nil {
		defaults := models.DefaultBuilderState()
		state = &defaults
	}

	props := sections.Props{
		Style:  style.Resolve(*state),
		Logo:   state.Logo,
		FAQ:    sections.OpenAt(current).Toggle(toggle),
		FAQURL: public.FAQURL(source),
	}
	component := sections.Render(models.SectionFAQ, props)
	apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render FAQ", "Failed to render FAQ")
}

func (h *Handlers) faqLoader(source string) (func(context.Context) (*models.BuilderState, error), bool) {
	switch source {
	case public.FAQSourcePublished:
		return h.sync.LoadPublished, true
	case public.FAQSourceDirect:
		return h.sync.LoadForDirectPage, true
	case public.FAQSourceBuilder:
		return func(ctx context.Context) (*models.BuilderState, error) {
			state, err := h.sync.LoadForBuilder(ctx)
			if err != nil {
				return nil, err
			}
			return &state, nil
		}, true
	}
	return nil, false
}

func intParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}
