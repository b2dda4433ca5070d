package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"dripcare/internal/editor"
	"dripcare/internal/handlers"
	"dripcare/internal/livesync"
	"dripcare/internal/session"
)

// testRouter builds the full route tree with empty dependencies. Tests
// here exercise routing and middleware, not handler behavior.
func testRouter(t *testing.T) chi.Router {
	t.Helper()
	admin := handlers.NewAdmin(nil, nil, nil, nil, nil, nil, nil, editor.NewManager())
	auth := handlers.NewAuth(nil, nil)
	public := handlers.NewPublic(nil, nil, nil, nil, nil, nil, nil)
	live := handlers.NewLive(livesync.NewMemoryBroker())

	r, limiter := New(session.NewStore(nil, false), admin, auth, public, live, false)
	t.Cleanup(limiter.Stop)
	return r
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if rec.Body.String() != `{"status":"ok"}` {
		t.Errorf("body: %s", rec.Body.String())
	}
}

func TestAdminRequiresSession(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/faq/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: %d, body: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminMutationsRequireCSRFToken(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/api/login", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: %d, body: %s", rec.Code, rec.Body.String())
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got == "" {
		t.Error("X-Frame-Options missing")
	}
}

func TestPublicRoutesRegistered(t *testing.T) {
	r := testRouter(t)

	paths := []string{
		"/api/page-texts",
		"/api/therapies",
		"/api/nutrients",
		"/api/faq",
		"/api/glossary",
		"/api/nursing-services",
		"/api/testimonials",
		"/api/live",
	}
	for _, path := range paths {
		rctx := chi.NewRouteContext()
		if !r.Match(rctx, http.MethodGet, path) {
			t.Errorf("GET %s not routed", path)
		}
	}
}

func TestAdminRoutesRegistered(t *testing.T) {
	r := testRouter(t)

	checks := []struct {
		method, path string
	}{
		{http.MethodPost, "/admin/api/login"},
		{http.MethodPost, "/admin/api/2fa/setup"},
		{http.MethodPost, "/admin/api/2fa/verify"},
		{http.MethodPost, "/admin/api/2fa/reset"},
		{http.MethodGet, "/admin/api/editor"},
		{http.MethodPost, "/admin/api/editor/therapies/begin-create"},
		{http.MethodPost, "/admin/api/page-texts/bulk"},
		{http.MethodPatch, "/admin/api/page-texts/1b4e28ba-2fa1-11d2-883f-0016d3cca427/value"},
		{http.MethodPost, "/admin/api/therapies/reorder"},
		{http.MethodPut, "/admin/api/glossary/1b4e28ba-2fa1-11d2-883f-0016d3cca427"},
		{http.MethodDelete, "/admin/api/testimonials/1b4e28ba-2fa1-11d2-883f-0016d3cca427"},
	}
	for _, c := range checks {
		rctx := chi.NewRouteContext()
		if !r.Match(rctx, c.method, c.path) {
			t.Errorf("%s %s not routed", c.method, c.path)
		}
	}
}
