// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"dripcare/internal/middleware"
	"dripcare/internal/session"
	"dripcare/internal/store"
)

// Auth handles operator login, TOTP enrollment and verification, and
// logout. Every operator must complete 2FA before the admin API opens up.
type Auth struct {
	users    *store.UserStore
	sessions *session.Store
}

// NewAuth creates a new Auth handler group.
func NewAuth(users *store.UserStore, sessions *session.Store) *Auth {
	return &Auth{users: users, sessions: sessions}
}

// Login checks credentials and opens a session with 2FA still pending.
// Invalid email and invalid password produce the same response so the
// endpoint cannot be used to probe for accounts.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseForm(w, r); !ok {
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if user == nil || !h.users.CheckPassword(user, password) {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	_, err = h.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		TwoFADone:   false,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	next := "verify"
	if user.Needs2FASetup() {
		next = "setup"
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"display_name": user.DisplayName,
		"two_fa":       next,
	})
}

// TwoFASetup generates a fresh TOTP secret for the logged-in operator and
// returns it with a QR code for authenticator apps. Safe to call again
// before the first verification; each call replaces the pending secret.
func (h *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.users.FindByID(r.Context(), sess.UserID)
	if err != nil || user == nil {
		slog.Error("2fa setup lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "setup failed")
		return
	}
	if user.TOTPEnabled {
		respondError(w, http.StatusConflict, "two-factor already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Drip & Care",
		AccountName: user.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		respondError(w, http.StatusInternalServerError, "setup failed")
		return
	}

	if err := h.users.SetTOTPSecret(r.Context(), user.ID, key.Secret()); err != nil {
		slog.Error("totp secret store failed", "error", err)
		respondError(w, http.StatusInternalServerError, "setup failed")
		return
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr encode failed", "error", err)
		respondError(w, http.StatusInternalServerError, "setup failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"secret":  key.Secret(),
		"qr_png":  base64.StdEncoding.EncodeToString(png),
		"account": user.Email,
	})
}

// TwoFAVerify checks a TOTP code and marks the session fully
// authenticated. On first use it also flips the account's enrollment flag.
func (h *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if _, ok := parseForm(w, r); !ok {
		return
	}
	code := r.PostFormValue("code")

	user, err := h.users.FindByID(r.Context(), sess.UserID)
	if err != nil || user == nil {
		slog.Error("2fa verify lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "verification failed")
		return
	}
	if user.TOTPSecret == nil {
		respondError(w, http.StatusConflict, "two-factor setup not started")
		return
	}

	if !totp.Validate(code, *user.TOTPSecret) {
		respondError(w, http.StatusUnauthorized, "invalid code")
		return
	}

	if !user.TOTPEnabled {
		if err := h.users.EnableTOTP(r.Context(), user.ID); err != nil {
			slog.Error("totp enable failed", "error", err)
			respondError(w, http.StatusInternalServerError, "verification failed")
			return
		}
	}

	sess.TwoFADone = true
	if err := h.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "verification failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"display_name": sess.DisplayName})
}

// TwoFAReset discards the operator's authenticator enrollment, for
// example after losing the device. It requires a fully verified session,
// drops the session back to the pending state and sends the operator
// through setup again.
func (h *Auth) TwoFAReset(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.users.ResetTOTP(r.Context(), sess.UserID); err != nil {
		slog.Error("totp reset failed", "error", err)
		respondError(w, http.StatusInternalServerError, "reset failed")
		return
	}

	sess.TwoFADone = false
	if err := h.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "reset failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"two_fa": "setup"})
}

// Logout destroys the session and clears the cookie.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("logout failed", "error", err)
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me reports who is logged in, for the admin UI to restore its header
// after a reload.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"email":        sess.Email,
		"display_name": sess.DisplayName,
		"two_fa_done":  sess.TwoFADone,
	})
}
