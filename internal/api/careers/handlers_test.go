package careers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/snapshot"
	"github.com/codr1/careerbuilder/internal/statesync"
	"github.com/codr1/careerbuilder/internal/storage"
	"github.com/codr1/careerbuilder/internal/testutil"
)

func newTestMux(t *testing.T) (*http.ServeMux, *statesync.Service) {
	mux, svc, _ := newTestMuxWithStore(t)
	return mux, svc
}

func newTestMuxWithStore(t *testing.T) (*http.ServeMux, *statesync.Service, storage.Store) {
	t.Helper()
	database := testutil.NewTestDB(t)
	local := storage.NewLocalStore(database)
	svc := statesync.NewService(local, statesync.Options{})
	h := NewHandlers(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /published", h.HandlePublished)
	mux.HandleFunc("GET /published/{page}", h.HandlePublished)
	mux.HandleFunc("GET /p", h.HandleDirect)
	mux.HandleFunc("GET /p/{page}", h.HandleDirect)
	mux.HandleFunc("GET /api/v1/sections/faq/{source}", h.HandleFAQ)
	return mux, svc, local
}

func get(mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func multiPageState(t *testing.T) models.BuilderState {
	t.Helper()
	state, err := snapshot.Decode([]byte(`{
		"multiPageLayout": true,
		"navigation": {"enabled": true, "style": "Header"},
		"pages": {"home": ["hero", "jobs"], "culture": ["about"]},
		"pageLabels": {"culture": "Our Culture"},
		"activePage": "culture"
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return state
}

func TestPublishedFallbacks(t *testing.T) {
	mux, _ := newTestMux(t)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "published", target: "/published", want: "Not yet published"},
		{name: "direct", target: "/p", want: "No career page yet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(mux, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Fatalf("body missing %q", tt.want)
			}
		})
	}
}

func TestPublishedRendersActivePageAndNavigation(t *testing.T) {
	mux, svc := newTestMux(t)
	if _, err := svc.Publish(context.Background(), multiPageState(t)); err != nil {
		t.Fatalf("publish: %v", err)
	}

	rec := get(mux, "/published")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`class="cb-nav-header"`, `href="/published/home"`, "Our Culture", `id="section-about"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, `id="section-jobs"`) {
		t.Errorf("active page culture should not render the home sections")
	}

	rec = get(mux, "/published/home")
	if !strings.Contains(rec.Body.String(), `id="section-jobs"`) {
		t.Errorf("/published/home should render the jobs section")
	}

	rec = get(mux, "/published/missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown page status = %d, want 404", rec.Code)
	}
}

func TestDirectPrefersLiveSnapshot(t *testing.T) {
	mux, svc := newTestMux(t)
	ctx := context.Background()
	if _, err := svc.Publish(ctx, multiPageState(t)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	live := models.DefaultBuilderState()
	if err := svc.Autosave(ctx, live); err != nil {
		t.Fatalf("autosave: %v", err)
	}

	body := get(mux, "/p").Body.String()
	if strings.Contains(body, "cb-nav-header") {
		t.Errorf("single-page live snapshot should render without navigation")
	}
	if !strings.Contains(body, `id="section-hero"`) {
		t.Errorf("live snapshot sections missing")
	}
}

func TestFAQToggle(t *testing.T) {
	mux, _ := newTestMux(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantOpen   int
	}{
		{name: "open_first", target: "/api/v1/sections/faq/direct?toggle=0", wantStatus: http.StatusOK, wantOpen: 1},
		{name: "close_open", target: "/api/v1/sections/faq/direct?current=0&toggle=0", wantStatus: http.StatusOK, wantOpen: 0},
		{name: "switch", target: "/api/v1/sections/faq/direct?current=0&toggle=1", wantStatus: http.StatusOK, wantOpen: 1},
		{name: "bad_toggle", target: "/api/v1/sections/faq/direct?toggle=99", wantStatus: http.StatusBadRequest},
		{name: "bad_current", target: "/api/v1/sections/faq/direct?current=x", wantStatus: http.StatusBadRequest},
		{name: "unknown_source", target: "/api/v1/sections/faq/drafts?toggle=0", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(mux, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			if got := strings.Count(rec.Body.String(), `class="cb-faq-answer"`); got != tt.wantOpen {
				t.Fatalf("open answers = %d, want %d", got, tt.wantOpen)
			}
		})
	}
}

func headingState(t *testing.T, heading string) models.BuilderState {
	t.Helper()
	state := models.DefaultBuilderState()
	state.Colors.Heading = heading
	state.SinglePageSectionOrder = []models.SectionID{models.SectionFAQ, models.SectionJobs}
	state.Pages.Set("home", state.SinglePageSectionOrder)
	return state
}

func TestFAQFragmentReadsItsPageSnapshot(t *testing.T) {
	mux, svc := newTestMux(t)
	ctx := context.Background()
	if _, err := svc.Publish(ctx, headingState(t, "#111111")); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := svc.Autosave(ctx, headingState(t, "#ff0000")); err != nil {
		t.Fatalf("autosave: %v", err)
	}

	tests := []struct {
		name    string
		page    string
		faqURL  string
		want    string
		notWant string
	}{
		{name: "published", page: "/published", faqURL: "/api/v1/sections/faq/published", want: "#111111", notWant: "#ff0000"},
		{name: "direct", page: "/p", faqURL: "/api/v1/sections/faq/direct", want: "#ff0000", notWant: "#111111"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := get(mux, tt.page).Body.String()
			if !strings.Contains(page, `hx-get="`+tt.faqURL+"?") {
				t.Fatalf("page does not link its FAQ to %s", tt.faqURL)
			}

			rec := get(mux, tt.faqURL+"?current=-1&toggle=0")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			body := rec.Body.String()
			if !strings.Contains(body, tt.want) {
				t.Errorf("fragment missing heading color %s", tt.want)
			}
			if strings.Contains(body, tt.notWant) {
				t.Errorf("fragment uses heading color %s from the other snapshot", tt.notWant)
			}
			if !strings.Contains(body, `hx-get="`+tt.faqURL+"?") {
				t.Errorf("fragment does not keep its source in the FAQ links")
			}
		})
	}
}

func TestTruncatedSnapshotFallsBackAndLogs(t *testing.T) {
	mux, _, local := newTestMuxWithStore(t)
	ctx := context.Background()
	const truncated = `{"pages":{"home":["hero"`
	for _, key := range []string{storage.KeyPublished, storage.KeyLiveState} {
		if err := local.Set(ctx, key, truncated); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "published", target: "/published", want: "Not yet published"},
		{name: "direct", target: "/p", want: "No career page yet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := zerolog.New(&logs)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = req.WithContext(logger.WithContext(req.Context()))

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Fatalf("body missing %q", tt.want)
			}
			if !strings.Contains(logs.String(), "Stored snapshot is unreadable") {
				t.Fatalf("parse failure not logged, got %q", logs.String())
			}
			if !strings.Contains(logs.String(), `"level":"error"`) {
				t.Fatalf("parse failure should log at error level, got %q", logs.String())
			}
		})
	}
}
