package builder

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/api/apiutil"
	"github.com/codr1/careerbuilder/internal/editor"
	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/presets"
	"github.com/codr1/careerbuilder/internal/sections"
)

type editFunc func(models.BuilderState) (models.BuilderState, error)

type catalogResponse struct {
	Sections []sections.Meta `json:"sections"`
	Addable  []sections.Meta `json:"addable"`
}

// edit loads the live snapshot, applies fn and autosaves the result.
func (h *Handlers) edit(w http.ResponseWriter, r *http.Request, status int, action string, fn editFunc) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	state, err := h.sync.LoadForBuilder(ctx)
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to load builder state")
		return
	}

	updated, err := fn(state)
	if err != nil {
		code := editStatus(err)
		logger.Warn().Err(err).Str("action", action).Int("status", code).Msg("Edit rejected")
		http.Error(w, err.Error(), code)
		return
	}

	if err := h.sync.Autosave(ctx, updated); err != nil {
		apiutil.WriteError(w, r, err, "Failed to save builder state")
		return
	}
	logger.Debug().Str("action", action).Msg("Builder state edited")
	h.respondState(w, r, status, updated)
}

func editStatus(err error) int {
	switch {
	case errors.Is(err, editor.ErrPageNotFound):
		return http.StatusNotFound
	case errors.Is(err, sections.ErrRequired),
		errors.Is(err, sections.ErrDuplicate),
		errors.Is(err, editor.ErrPageExists),
		errors.Is(err, editor.ErrLastPage):
		return http.StatusConflict
	case errors.Is(err, editor.ErrInvalidPageName),
		errors.Is(err, editor.ErrInvalidSetting),
		errors.Is(err, sections.ErrUnknownSection),
		errors.Is(err, sections.ErrIndexOutOfRange),
		errors.Is(err, presets.ErrUnknownPreset):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// /api/v1/settings
func (h *Handlers) HandleSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	h.edit(w, r, http.StatusOK, "settings", func(state models.BuilderState) (models.BuilderState, error) {
		return editor.ApplySettings(state, r.PostForm)
	})
}

// /api/v1/theme/preset
func (h *Handlers) HandleApplyPreset(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Error(w, "Preset name is required", http.StatusBadRequest)
		return
	}
	h.edit(w, r, http.StatusOK, "apply_preset", func(state models.BuilderState) (models.BuilderState, error) {
		return h.presets.Apply(state, name)
	})
}

// /api/v1/presets
func (h *Handlers) HandlePresets(w http.ResponseWriter, r *http.Request) {
	if err := apiutil.WriteJSON(w, http.StatusOK, h.presets); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write presets response")
	}
}

// /api/v1/catalog
func (h *Handlers) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	state, err := h.sync.LoadForBuilder(ctx)
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to load builder state")
		return
	}
	page := r.URL.Query().Get(pageParam)
	if page == "" {
		page = state.ActivePage
	}
	resp := catalogResponse{
		Sections: sections.Catalog(),
		Addable:  sections.Addable(state.CurrentSections(page)),
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write catalog response")
	}
}

// /api/v1/pages
func (h *Handlers) HandleAddPage(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	h.edit(w, r, http.StatusCreated, "add_page", func(state models.BuilderState) (models.BuilderState, error) {
		updated, _, err := editor.AddPage(state, name)
		return updated, err
	})
}

// /api/v1/pages/{page}
func (h *Handlers) HandleDeletePage(w http.ResponseWriter, r *http.Request) {
	page := r.PathValue(pageParam)
	h.edit(w, r, http.StatusOK, "delete_page", func(state models.BuilderState) (models.BuilderState, error) {
		return editor.DeletePage(state, page)
	})
}

// /api/v1/pages/{page}/activate
func (h *Handlers) HandleActivatePage(w http.ResponseWriter, r *http.Request) {
	page := r.PathValue(pageParam)
	h.edit(w, r, http.StatusOK, "activate_page", func(state models.BuilderState) (models.BuilderState, error) {
		return editor.ActivatePage(state, page)
	})
}

// /api/v1/pages/{page}/sections
func (h *Handlers) HandleAddSection(w http.ResponseWriter, r *http.Request) {
	page := r.PathValue(pageParam)
	id := models.SectionID(strings.TrimSpace(r.FormValue(sectionParam)))
	h.edit(w, r, http.StatusOK, "add_section", func(state models.BuilderState) (models.BuilderState, error) {
		return editor.AddSection(state, page, id)
	})
}

// /api/v1/pages/{page}/sections/{section}
func (h *Handlers) HandleRemoveSection(w http.ResponseWriter, r *http.Request) {
	page := r.PathValue(pageParam)
	id := models.SectionID(r.PathValue(sectionParam))
	h.edit(w, r, http.StatusOK, "remove_section", func(state models.BuilderState) (models.BuilderState, error) {
		return editor.RemoveSection(state, page, id)
	})
}

// /api/v1/pages/{page}/sections/move
func (h *Handlers) HandleMoveSection(w http.ResponseWriter, r *http.Request) {
	page := r.PathValue(pageParam)
	from, errFrom := strconv.Atoi(r.FormValue("from"))
	to, errTo := strconv.Atoi(r.FormValue("to"))
	if errFrom != nil || errTo != nil {
		http.Error(w, "from and to must be integers", http.StatusBadRequest)
		return
	}
	h.edit(w, r, http.StatusOK, "move_section", func(state models.BuilderState) (models.BuilderState, error) {
		return editor.MoveSection(state, page, from, to)
	})
}
