package builder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/api/apiutil"
	"github.com/codr1/careerbuilder/internal/api/htmx"
	"github.com/codr1/careerbuilder/internal/uitheme"
)

type uiThemeRequest struct {
	Mode uitheme.Mode `json:"mode"`
}

type uiThemeResponse struct {
	Mode        uitheme.Mode `json:"mode"`
	ChromeClass string       `json:"chromeClass"`
}

// /api/v1/ui-theme
func (h *Handlers) HandleSetUITheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	mode, err := requestedMode(r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	chrome := uitheme.NewContext(h.local)
	if err := chrome.Set(ctx, mode); err != nil {
		if errors.Is(err, uitheme.ErrInvalidMode) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		apiutil.WriteError(w, r, err, "Failed to save builder theme")
		return
	}
	logger.Debug().Str("mode", string(mode)).Msg("Builder theme changed")

	if htmx.IsRequest(r) {
		event, err := json.Marshal(map[string]any{"uiThemeChanged": map[string]string{"value": string(mode)}})
		if err != nil {
			apiutil.WriteError(w, r, err, "Failed to encode event")
			return
		}
		htmx.Trigger(w, string(event))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, uiThemeResponse{Mode: mode, ChromeClass: mode.ChromeClass()}); err != nil {
		logger.Error().Err(err).Msg("Failed to write ui theme response")
	}
}

// requestedMode reads the mode from a JSON body or the form.
func requestedMode(r *http.Request) (uitheme.Mode, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req uiThemeRequest
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return "", err
		}
		return req.Mode, nil
	}
	return uitheme.Mode(r.FormValue("mode")), nil
}
