package builder

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/api/apiutil"
	"github.com/codr1/careerbuilder/internal/api/htmx"
	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/statesync"
	buildertempl "github.com/codr1/careerbuilder/internal/templates/components/builder"
)

type publishResponse struct {
	RevisionID string              `json:"revisionId,omitempty"`
	State      models.BuilderState `json:"state"`
}

// /api/v1/state
func (h *Handlers) HandleGetState(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	state, err := h.sync.LoadForBuilder(ctx)
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to load builder state")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, state); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write state response")
	}
}

// /api/v1/state
func (h *Handlers) HandlePutState(w http.ResponseWriter, r *http.Request) {
	state, err := apiutil.DecodeSnapshot(w, r)
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to read snapshot")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if err := h.sync.Autosave(ctx, state); err != nil {
		apiutil.WriteError(w, r, err, "Failed to save builder state")
		return
	}
	h.respondState(w, r, http.StatusOK, state)
}

// /api/v1/publish
//
// Publishes the request body when it carries a JSON snapshot, otherwise the
// live snapshot.
func (h *Handlers) HandlePublish(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var (
		state models.BuilderState
		err   error
	)
	if hasJSONBody(r) {
		state, err = apiutil.DecodeSnapshot(w, r)
		if err != nil {
			apiutil.WriteError(w, r, err, "Failed to read snapshot")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if !hasJSONBody(r) {
		state, err = h.sync.LoadForBuilder(ctx)
		if err != nil {
			apiutil.WriteError(w, r, err, "Failed to load builder state")
			return
		}
	}

	revisionID, err := h.sync.Publish(ctx, state)
	if errors.Is(err, statesync.ErrValidation) {
		logger.Warn().Err(err).Msg("Publish rejected by validation")
		if htmx.IsRequest(r) {
			apiutil.WriteHTMLFeedback(w, http.StatusOK, err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to publish")
		return
	}

	if htmx.IsRequest(r) {
		htmx.Trigger(w, "snapshotPublished")
		apiutil.WriteHTMLFeedback(w, http.StatusOK, "Published.")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, publishResponse{RevisionID: revisionID, State: state}); err != nil {
		logger.Error().Err(err).Msg("Failed to write publish response")
	}
}

// /api/v1/revisions
func (h *Handlers) HandleListRevisions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	revisions, err := h.sync.History(ctx, statesync.KindPublished, revisionsLimit)
	if errors.Is(err, statesync.ErrNoRevisions) {
		http.Error(w, "Revision history is disabled", http.StatusNotFound)
		return
	}
	if err != nil {
		apiutil.WriteError(w, r, err, "Failed to list revisions")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"revisions": revisions}); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write revisions response")
	}
}

// /api/v1/revisions/{id}/restore
func (h *Handlers) HandleRestoreRevision(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue(revisionParam))
	if id == "" {
		http.Error(w, "Revision id is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	state, err := h.sync.Restore(ctx, id)
	switch {
	case errors.Is(err, statesync.ErrRevisionNotFound), errors.Is(err, statesync.ErrNoRevisions):
		http.Error(w, "Revision not found", http.StatusNotFound)
		return
	case errors.Is(err, statesync.ErrValidation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		apiutil.WriteError(w, r, err, "Failed to restore revision")
		return
	}
	log.Ctx(r.Context()).Info().Str("revision_id", id).Msg("Revision restored")
	h.respondState(w, r, http.StatusOK, state)
}

// respondState answers an edit: the refreshed editor for htmx, the state as
// JSON otherwise.
func (h *Handlers) respondState(w http.ResponseWriter, r *http.Request, status int, state models.BuilderState) {
	if htmx.IsRequest(r) {
		component := buildertempl.Editor(buildertempl.NewEditorData(state, h.presets, h.debounce))
		headers := map[string]string{"HX-Trigger": "snapshotSaved"}
		apiutil.RenderHTMLComponentStatus(r.Context(), w, status, component, headers, "Failed to render editor", "Failed to render response")
		return
	}
	if err := apiutil.WriteJSON(w, status, state); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write state response")
	}
}

func hasJSONBody(r *http.Request) bool {
	return r.ContentLength != 0 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
