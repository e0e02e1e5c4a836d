package apiutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/snapshot"
)

// MaxSnapshotBytes bounds snapshot request bodies.
const MaxSnapshotBytes = 1 << 20

type HandlerError struct {
	Status  int
	Message string
	Err     error
}

func (e HandlerError) Error() string {
	return e.Message
}

func (e HandlerError) Unwrap() error {
	return e.Err
}

func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

// DecodeSnapshot reads a snapshot body through snapshot.Decode, so request
// bodies get the same repair as stored snapshots. Unknown fields are allowed.
func DecodeSnapshot(w http.ResponseWriter, r *http.Request) (models.BuilderState, error) {
	if r.Body == nil {
		return models.BuilderState{}, HandlerError{Status: http.StatusBadRequest, Message: "missing request body"}
	}
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxSnapshotBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.BuilderState{}, HandlerError{Status: http.StatusRequestEntityTooLarge, Message: "snapshot too large", Err: err}
		}
		return models.BuilderState{}, HandlerError{Status: http.StatusBadRequest, Message: "failed to read body", Err: err}
	}
	state, err := snapshot.Decode(body)
	if err != nil {
		return models.BuilderState{}, HandlerError{Status: http.StatusBadRequest, Message: "invalid snapshot JSON", Err: err}
	}
	return state, nil
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if err := encoder.Encode(payload); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteError writes err as a plain-text http.Error. HandlerError carries its
// own status; anything else is a 500 with fallback as the message.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var handlerErr HandlerError
	if errors.As(err, &handlerErr) {
		log.Ctx(r.Context()).Warn().Err(err).Int("status", handlerErr.Status).Msg(handlerErr.Message)
		http.Error(w, handlerErr.Message, handlerErr.Status)
		return
	}
	log.Ctx(r.Context()).Error().Err(err).Msg(fallback)
	http.Error(w, fallback, http.StatusInternalServerError)
}

// RenderHTMLComponent renders into a buffer first so a failed render can
// still produce a clean 500. It reports whether the response was written.
func RenderHTMLComponent(ctx context.Context, w http.ResponseWriter, component templ.Component, headers map[string]string, logMsg, errMsg string) bool {
	return RenderHTMLComponentStatus(ctx, w, http.StatusOK, component, headers, logMsg, errMsg)
}

func RenderHTMLComponentStatus(ctx context.Context, w http.ResponseWriter, status int, component templ.Component, headers map[string]string, logMsg, errMsg string) bool {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg(logMsg)
		http.Error(w, errMsg, http.StatusInternalServerError)
		return false
	}

	for key, value := range headers {
		w.Header().Set(key, value)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to write HTML response")
		return false
	}
	return true
}

// WriteHTMLFeedback writes a small status fragment for htmx targets.
func WriteHTMLFeedback(w http.ResponseWriter, status int, msg string) {
	class := "cb-feedback"
	if status >= http.StatusBadRequest {
		class += " cb-feedback-error"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<div class="%s" role="status">%s</div>`, class, templ.EscapeString(msg))
}
