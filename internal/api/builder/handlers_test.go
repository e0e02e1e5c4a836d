package builder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/presets"
	"github.com/codr1/careerbuilder/internal/statesync"
	"github.com/codr1/careerbuilder/internal/storage"
	"github.com/codr1/careerbuilder/internal/testutil"
)

type fixture struct {
	mux  *http.ServeMux
	h    *Handlers
	sync *statesync.Service
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	local := storage.NewLocalStore(database)
	svc := statesync.NewService(local, statesync.Options{
		Revisions:     statesync.NewRevisions(database),
		StrictPublish: strict,
	})
	set, err := presets.Builtin()
	require.NoError(t, err)

	h := NewHandlers(svc, local, set, 500*time.Millisecond)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /builder", h.HandleBuilderPage)
	mux.HandleFunc("GET /builder/shell", h.HandleShell)
	mux.HandleFunc("POST /builder/shell/retry", h.HandleShellRetry)
	mux.HandleFunc("GET /api/v1/state", h.HandleGetState)
	mux.HandleFunc("PUT /api/v1/state", h.HandlePutState)
	mux.HandleFunc("POST /api/v1/publish", h.HandlePublish)
	mux.HandleFunc("GET /api/v1/revisions", h.HandleListRevisions)
	mux.HandleFunc("POST /api/v1/revisions/{id}/restore", h.HandleRestoreRevision)
	mux.HandleFunc("POST /api/v1/settings", h.HandleSettings)
	mux.HandleFunc("POST /api/v1/theme/preset", h.HandleApplyPreset)
	mux.HandleFunc("GET /api/v1/presets", h.HandlePresets)
	mux.HandleFunc("GET /api/v1/catalog", h.HandleCatalog)
	mux.HandleFunc("POST /api/v1/ui-theme", h.HandleSetUITheme)
	mux.HandleFunc("POST /api/v1/pages", h.HandleAddPage)
	mux.HandleFunc("DELETE /api/v1/pages/{page}", h.HandleDeletePage)
	mux.HandleFunc("POST /api/v1/pages/{page}/activate", h.HandleActivatePage)
	mux.HandleFunc("POST /api/v1/pages/{page}/sections", h.HandleAddSection)
	mux.HandleFunc("POST /api/v1/pages/{page}/sections/move", h.HandleMoveSection)
	mux.HandleFunc("DELETE /api/v1/pages/{page}/sections/{section}", h.HandleRemoveSection)
	return &fixture{mux: mux, h: h, sync: svc}
}

func (f *fixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) form(t *testing.T, method, target string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.do(t, req)
}

func (f *fixture) putJSON(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return f.do(t, req)
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) models.BuilderState {
	t.Helper()
	var state models.BuilderState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return state
}

const multiPageSnapshot = `{
  "themeName": "Default",
  "multiPageLayout": true,
  "pages": {"home": ["hero", "jobs"], "team": ["team", "footer"]},
  "activePage": "home"
}`

func TestGetStateDefaultsWhenEmpty(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, models.DefaultThemeName, state.ThemeName)
	assert.Equal(t, models.DefaultPageKey, state.ActivePage)
}

func TestPutStateNormalizesAndPersists(t *testing.T) {
	f := newFixture(t, false)

	rec := f.putJSON(t, "/api/v1/state", `{"themeName": "Ocean", "pages": {}, "activePage": "gone"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, []string{"home"}, state.Pages.Keys())
	assert.Equal(t, "home", state.ActivePage)

	live, err := f.sync.LoadLive(context.Background())
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, "Ocean", live.ThemeName)
}

func TestPutStateRejectsNonObject(t *testing.T) {
	f := newFixture(t, false)
	rec := f.putJSON(t, "/api/v1/state", `"nope"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublishWritesPublishedAndLive(t *testing.T) {
	f := newFixture(t, false)
	require.Equal(t, http.StatusOK, f.putJSON(t, "/api/v1/state", multiPageSnapshot).Code)

	rec := f.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/publish", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		RevisionID string              `json:"revisionId"`
		State      models.BuilderState `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RevisionID)
	assert.True(t, resp.State.MultiPageLayout)

	published, err := f.sync.LoadPublished(context.Background())
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, []string{"home", "team"}, published.Pages.Keys())

	rec = f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/revisions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), resp.RevisionID)
}

func TestStrictPublishRejectsInvalidSnapshot(t *testing.T) {
	f := newFixture(t, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/publish", strings.NewReader(`{"pages": {"home": ["hero"]}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(t, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	published, err := f.sync.LoadPublished(context.Background())
	require.NoError(t, err)
	assert.Nil(t, published)
}

func TestPublishHTMXRendersFeedback(t *testing.T) {
	f := newFixture(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/publish", nil)
	req.Header.Set("HX-Request", "true")
	rec := f.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "snapshotPublished", rec.Header().Get("HX-Trigger"))
	assert.Contains(t, rec.Body.String(), "Published.")
}

func TestRestoreRevision(t *testing.T) {
	f := newFixture(t, false)
	require.Equal(t, http.StatusOK, f.putJSON(t, "/api/v1/state", multiPageSnapshot).Code)
	id, err := f.sync.Publish(context.Background(), mustLive(t, f))
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, f.putJSON(t, "/api/v1/state", `{"themeName": "Ocean"}`).Code)

	rec := f.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/revisions/"+id+"/restore", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeState(t, rec).MultiPageLayout)

	rec = f.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/revisions/unknown/restore", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func mustLive(t *testing.T, f *fixture) models.BuilderState {
	t.Helper()
	state, err := f.sync.LoadForBuilder(context.Background())
	require.NoError(t, err)
	return state
}

func TestPageEdits(t *testing.T) {
	f := newFixture(t, false)
	require.Equal(t, http.StatusOK, f.putJSON(t, "/api/v1/state", multiPageSnapshot).Code)

	rec := f.form(t, http.MethodPost, "/api/v1/pages", url.Values{"name": {"Life at Acme"}})
	require.Equal(t, http.StatusCreated, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, []string{"home", "team", "life-at-acme"}, state.Pages.Keys())
	assert.Equal(t, "life-at-acme", state.ActivePage)

	rec = f.form(t, http.MethodPost, "/api/v1/pages", url.Values{"name": {"Team"}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.form(t, http.MethodPost, "/api/v1/pages", url.Values{"name": {"  "}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.form(t, http.MethodPost, "/api/v1/pages/team/activate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "team", decodeState(t, rec).ActivePage)

	rec = f.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/pages/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/pages/team", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	state = decodeState(t, rec)
	assert.False(t, state.Pages.Has("team"))
	assert.Equal(t, "home", state.ActivePage)
}

func TestSectionEdits(t *testing.T) {
	f := newFixture(t, false)
	require.Equal(t, http.StatusOK, f.putJSON(t, "/api/v1/state", multiPageSnapshot).Code)

	rec := f.form(t, http.MethodPost, "/api/v1/pages/team/sections", url.Values{"section": {"faq"}})
	require.Equal(t, http.StatusOK, rec.Code)
	sections, _ := decodeState(t, rec).Pages.Get("team")
	assert.Equal(t, []models.SectionID{"team", "faq", "footer"}, sections)

	rec = f.form(t, http.MethodPost, "/api/v1/pages/team/sections", url.Values{"section": {"faq"}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.form(t, http.MethodPost, "/api/v1/pages/team/sections", url.Values{"section": {"bogus"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.form(t, http.MethodPost, "/api/v1/pages/team/sections/move", url.Values{"from": {"1"}, "to": {"0"}})
	require.Equal(t, http.StatusOK, rec.Code)
	sections, _ = decodeState(t, rec).Pages.Get("team")
	assert.Equal(t, []models.SectionID{"faq", "team", "footer"}, sections)

	rec = f.form(t, http.MethodPost, "/api/v1/pages/team/sections/move", url.Values{"from": {"9"}, "to": {"0"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/pages/home/sections/jobs", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/pages/team/sections/faq", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	sections, _ = decodeState(t, rec).Pages.Get("team")
	assert.Equal(t, []models.SectionID{"team", "footer"}, sections)
}

func TestSettingsAndPreset(t *testing.T) {
	f := newFixture(t, false)

	rec := f.form(t, http.MethodPost, "/api/v1/settings", url.Values{
		"colors.primary":        {"#123456"},
		"layout.sectionPadding": {"spacious"},
		"buttons.cornerRadius":  {"12"},
		"navigation.enabled":    {"false", "true"},
		"multiPageLayout":       {"false"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, "#123456", state.Colors.Primary)
	assert.Equal(t, models.PaddingSpacious, state.Layout.SectionPadding)
	assert.Equal(t, 12, state.Buttons.CornerRadius)
	assert.True(t, state.Navigation.Enabled)

	rec = f.form(t, http.MethodPost, "/api/v1/settings", url.Values{"layout.sectionPadding": {"huge"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.form(t, http.MethodPost, "/api/v1/theme/preset", url.Values{"name": {"ocean"}})
	require.Equal(t, http.StatusOK, rec.Code)
	state = decodeState(t, rec)
	assert.Equal(t, "Ocean", state.ThemeName)
	assert.Equal(t, "#0369a1", state.Colors.Primary)

	rec = f.form(t, http.MethodPost, "/api/v1/theme/preset", url.Values{"name": {"Nope"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditRespondsWithEditorForHTMX(t *testing.T) {
	f := newFixture(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/theme/preset", strings.NewReader("name=Ocean"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := f.do(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "snapshotSaved", rec.Header().Get("HX-Trigger"))
	assert.Contains(t, rec.Body.String(), `id="builder-editor"`)
}

func TestCatalogListsAddable(t *testing.T) {
	f := newFixture(t, false)
	require.Equal(t, http.StatusOK, f.putJSON(t, "/api/v1/state", multiPageSnapshot).Code)

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?page=home", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp catalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Sections, len(models.AllSectionIDs))
	for _, meta := range resp.Addable {
		assert.NotEqual(t, models.SectionJobs, meta.ID)
		assert.NotEqual(t, models.SectionHero, meta.ID)
	}
}

func TestSetUITheme(t *testing.T) {
	f := newFixture(t, false)

	rec := f.form(t, http.MethodPost, "/api/v1/ui-theme", url.Values{"mode": {"dark"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mode":"dark","chromeClass":"cb-chrome-dark"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ui-theme", strings.NewReader("mode=light"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec = f.do(t, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.JSONEq(t, `{"uiThemeChanged":{"value":"light"}}`, rec.Header().Get("HX-Trigger"))

	rec = f.form(t, http.MethodPost, "/api/v1/ui-theme", url.Values{"mode": {"sepia"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuilderShellLoads(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/builder", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="builder-shell"`)

	require.Eventually(t, func() bool {
		rec := f.do(t, httptest.NewRequest(http.MethodGet, "/builder/shell", nil))
		return rec.Code == http.StatusOK && strings.Contains(rec.Body.String(), `id="builder-editor"`)
	}, 5*time.Second, 10*time.Millisecond)
}

func TestShellRetryRestartsLoad(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(t, httptest.NewRequest(http.MethodPost, "/builder/shell/retry", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hx-get="/builder/shell"`)

	res, done, started := f.h.awaitShell(context.Background(), 2*time.Second)
	require.True(t, started)
	require.True(t, done)
	require.NoError(t, res.Err)
}

func TestSetUIThemeJSON(t *testing.T) {
	f := newFixture(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ui-theme", strings.NewReader(`{"mode":"system"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mode":"system","chromeClass":"cb-chrome-system"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/api/v1/ui-theme", strings.NewReader(`{"mode":"dark","extra":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec = f.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
