// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Drip & Care content
// API. Handlers are grouped by concern (admin, public, auth, live) and
// receive their dependencies through the handler struct. All endpoints
// speak JSON; the admin endpoints accept form-encoded submissions from
// the editor UI.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dripcare/internal/editor"
	"dripcare/internal/session"
)

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondValidation writes the per-field messages of a rejected submission.
func respondValidation(w http.ResponseWriter, verr *editor.ValidationError) {
	respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": verr.Fields,
	})
}

// respondList writes items as a JSON array, never null. Public consumers
// iterate the body directly and must not special-case missing data.
func respondList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	respondJSON(w, http.StatusOK, items)
}

// decodeJSONBody decodes a JSON request body into v, capping the body at
// 1 MiB and rejecting trailing garbage.
func decodeJSONBody(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected trailing data")
	}
	return nil
}

// urlID extracts and parses the {id} route parameter.
func urlID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// editorKey identifies the caller's editor session. The raw session
// cookie value is already a random 64-char identifier, so it doubles as
// the state key without another lookup.
func editorKey(r *http.Request) string {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// confirmed reports whether a destructive request carries the explicit
// confirmation flag. Deletes without it are rejected so a stray click in
// the admin UI can never drop a row.
func confirmed(r *http.Request) bool {
	return r.FormValue("confirm") == "true"
}
