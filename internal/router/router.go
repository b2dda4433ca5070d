// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Drip & Care content server. It organizes routes into the public read
// API, the websocket feed, and the session-protected admin API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dripcare/internal/handlers"
	"dripcare/internal/middleware"
	"dripcare/internal/session"
)

// loginRateLimit bounds credential and TOTP guessing per client IP.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// New creates the configured chi router with all middleware and route
// groups wired up. The secureCookies flag marks the CSRF cookie Secure,
// matching the session cookie. The returned rate limiter must be stopped
// on shutdown.
func New(
	sessions *session.Store,
	admin *handlers.Admin,
	auth *handlers.Auth,
	public *handlers.Public,
	live *handlers.Live,
	secureCookies bool,
) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	// Public read API. No session, no CSRF; everything is cacheable GET.
	r.Route("/api", func(r chi.Router) {
		r.Get("/page-texts", public.PageTexts)
		r.Get("/therapies", public.Therapies)
		r.Get("/nutrients", public.Nutrients)
		r.Get("/faq", public.FAQ)
		r.Get("/glossary", public.Glossary)
		r.Get("/nursing-services", public.NursingServices)
		r.Get("/testimonials", public.Testimonials)

		// Change feed. The upgrade handshake is a GET like the rest.
		r.Get("/live", live.Feed)
	})

	loginLimiter := middleware.NewRateLimiter(loginRateLimit, loginRateWindow)

	// Admin API. Sessions load for the whole group; CSRF covers every
	// state-changing route.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.CSRF(secureCookies))
		r.Use(middleware.LoadSession(sessions))

		// Credential endpoints are rate limited and open to anonymous
		// callers; everything else requires a verified session.
		r.Group(func(r chi.Router) {
			r.Use(loginLimiter.Middleware)
			r.Post("/login", auth.Login)
		})
		r.Post("/logout", auth.Logout)
		r.Get("/me", auth.Me)

		// 2FA enrollment needs a session but not completed verification.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(loginLimiter.Middleware)
			r.Post("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			// Re-enrollment needs the current authenticator first, so it
			// sits behind full verification.
			r.Post("/2fa/reset", auth.TwoFAReset)

			// Editor state. Entity segments live under /editor so they
			// never collide with the static collection routes below.
			r.Get("/editor", admin.EditorState)
			r.Post("/editor/cancel", admin.CancelEdit)
			r.Post("/editor/{entity}/begin-create", admin.BeginCreate)
			r.Post("/editor/{entity}/{id}/begin-edit", admin.BeginEdit)

			r.Route("/page-texts", func(r chi.Router) {
				r.Get("/", admin.PageTextsList)
				r.Post("/", admin.PageTextCreate)
				r.Post("/bulk", admin.PageTextsSave)
				r.Put("/{id}", admin.PageTextUpdate)
				r.Patch("/{id}/value", admin.PageTextUpdateValue)
				r.Delete("/{id}", admin.PageTextDelete)
			})

			r.Route("/therapies", func(r chi.Router) {
				r.Get("/", admin.TherapiesList)
				r.Post("/", admin.TherapyCreate)
				r.Post("/reorder", admin.TherapiesReorder)
				r.Put("/{id}", admin.TherapyUpdate)
				r.Post("/{id}/active", admin.TherapySetActive)
				r.Delete("/{id}", admin.TherapyDelete)
			})

			r.Route("/nutrients", func(r chi.Router) {
				r.Get("/", admin.NutrientsList)
				r.Post("/", admin.NutrientCreate)
				r.Post("/reorder", admin.NutrientsReorder)
				r.Put("/{id}", admin.NutrientUpdate)
				r.Delete("/{id}", admin.NutrientDelete)
			})

			r.Route("/faq", func(r chi.Router) {
				r.Get("/", admin.FAQList)
				r.Post("/", admin.FAQCreate)
				r.Post("/reorder", admin.FAQReorder)
				r.Put("/{id}", admin.FAQUpdate)
				r.Post("/{id}/active", admin.FAQSetActive)
				r.Delete("/{id}", admin.FAQDelete)
			})

			r.Route("/glossary", func(r chi.Router) {
				r.Get("/", admin.GlossaryList)
				r.Post("/", admin.GlossaryCreate)
				r.Post("/reorder", admin.GlossaryReorder)
				r.Put("/{id}", admin.GlossaryUpdate)
				r.Post("/{id}/active", admin.GlossarySetActive)
				r.Delete("/{id}", admin.GlossaryDelete)
			})

			r.Route("/nursing-services", func(r chi.Router) {
				r.Get("/", admin.NursingServicesList)
				r.Post("/", admin.NursingServiceCreate)
				r.Post("/reorder", admin.NursingServicesReorder)
				r.Put("/{id}", admin.NursingServiceUpdate)
				r.Delete("/{id}", admin.NursingServiceDelete)
			})

			r.Route("/testimonials", func(r chi.Router) {
				r.Get("/", admin.TestimonialsList)
				r.Post("/", admin.TestimonialCreate)
				r.Put("/{id}", admin.TestimonialUpdate)
				r.Post("/{id}/active", admin.TestimonialSetActive)
				r.Delete("/{id}", admin.TestimonialDelete)
			})
		})
	})

	return r, loginLimiter
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
