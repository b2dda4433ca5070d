package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"

	"dripcare/internal/database"
	"dripcare/internal/editor"
	"dripcare/internal/livesync"
	"dripcare/internal/session"
	"dripcare/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDSN() string {
	return "postgres://" + envOr("POSTGRES_USER", "dripcare") +
		":" + envOr("POSTGRES_PASSWORD", "changeme") +
		"@" + envOr("POSTGRES_HOST", "localhost") +
		":" + envOr("POSTGRES_PORT", "5432") +
		"/" + envOr("POSTGRES_DB", "dripcare") +
		"?sslmode=disable"
}

// testDB opens the test database, skipping when Postgres is unreachable.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("cannot open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// testAdmin wires an Admin over real stores and an in-memory change bus.
func testAdmin(t *testing.T, db *sql.DB) (*Admin, *livesync.MemoryBroker) {
	t.Helper()
	bus := livesync.NewMemoryBroker()
	a := NewAdmin(
		store.NewPageTextStore(db, bus),
		store.NewTherapyStore(db, bus),
		store.NewNutrientStore(db, bus),
		store.NewFAQStore(db, bus),
		store.NewGlossaryStore(db, bus),
		store.NewNursingServiceStore(db, bus),
		store.NewTestimonialStore(db, bus),
		editor.NewManager(),
	)
	return a, bus
}

// statelessAdmin builds an Admin with no stores for tests that never get
// past request validation.
func statelessAdmin() *Admin {
	return NewAdmin(nil, nil, nil, nil, nil, nil, nil, editor.NewManager())
}

// adminMux mounts the admin handlers the way the router does, so URL
// parameters resolve in tests.
func adminMux(a *Admin) chi.Router {
	r := chi.NewRouter()
	r.Get("/editor", a.EditorState)
	r.Post("/editor/cancel", a.CancelEdit)
	r.Post("/editor/{entity}/begin-create", a.BeginCreate)
	r.Post("/editor/{entity}/{id}/begin-edit", a.BeginEdit)

	r.Get("/faq_items", a.FAQList)
	r.Post("/faq_items", a.FAQCreate)
	r.Put("/faq_items/{id}", a.FAQUpdate)
	r.Post("/faq_items/{id}/active", a.FAQSetActive)
	r.Post("/faq_items/reorder", a.FAQReorder)
	r.Delete("/faq_items/{id}", a.FAQDelete)

	r.Post("/therapies", a.TherapyCreate)
	r.Post("/therapies/reorder", a.TherapiesReorder)

	r.Get("/page-texts", a.PageTextsList)
	r.Post("/page-texts", a.PageTextCreate)
	r.Patch("/page-texts/{id}/value", a.PageTextUpdateValue)
	return r
}

// postForm performs a form-encoded request against the handler.
func postForm(h http.Handler, method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func getJSON(h http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: session.CookieName, Value: value}
}
