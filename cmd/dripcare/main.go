// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Drip & Care content server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dripcare/internal/config"
	"dripcare/internal/database"
	"dripcare/internal/editor"
	"dripcare/internal/handlers"
	"dripcare/internal/livesync"
	"dripcare/internal/router"
	"dripcare/internal/session"
	"dripcare/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the admin account and default page copy. No-op when the rows
	// already exist, so safe on every start.
	if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey for sessions and the change event bus.
	valkeyClient, err := livesync.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure.
	secureCookies := !cfg.IsDev()
	sessions := session.NewStore(valkeyClient, secureCookies)

	// The change broker fans mutation events out through Valkey pub/sub
	// so every instance and every open browser tab sees them.
	broker := livesync.NewRedisBroker(valkeyClient)

	// Data stores publish their change events on the broker.
	userStore := store.NewUserStore(db)
	pageTextStore := store.NewPageTextStore(db, broker)
	therapyStore := store.NewTherapyStore(db, broker)
	nutrientStore := store.NewNutrientStore(db, broker)
	faqStore := store.NewFAQStore(db, broker)
	glossaryStore := store.NewGlossaryStore(db, broker)
	nursingStore := store.NewNursingServiceStore(db, broker)
	testimonialStore := store.NewTestimonialStore(db, broker)

	// Handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(
		pageTextStore, therapyStore, nutrientStore, faqStore,
		glossaryStore, nursingStore, testimonialStore,
		editor.NewManager(),
	)
	authHandlers := handlers.NewAuth(userStore, sessions)
	publicHandlers := handlers.NewPublic(
		pageTextStore, therapyStore, nutrientStore, faqStore,
		glossaryStore, nursingStore, testimonialStore,
	)
	liveHandlers := handlers.NewLive(broker)

	r, loginLimiter := router.New(sessions, adminHandlers, authHandlers, publicHandlers, liveHandlers, secureCookies)
	defer loginLimiter.Stop()

	// WriteTimeout stays at zero: the websocket feed holds its connection
	// open indefinitely and per-message deadlines bound the writes instead.
	srv := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     r,
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
