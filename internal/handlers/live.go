// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"dripcare/internal/livesync"
	"dripcare/internal/store"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = 45 * time.Second
)

// Live streams change events to websocket clients. Every open page holds
// one socket; on an event for a table it re-fetches that table through the
// public endpoints. The feed carries no content, only change notices, so
// it needs no authentication.
type Live struct {
	broker   livesync.Broker
	upgrader websocket.Upgrader
}

// NewLive creates the websocket feed handler.
func NewLive(broker livesync.Broker) *Live {
	return &Live{
		broker: broker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The feed only announces that public content changed; any
			// origin may listen.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Feed upgrades the connection and pumps change events until the client
// goes away or the subscription closes.
func (h *Live) Feed(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		slog.Debug("live upgrade rejected", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events, release, err := h.broker.Subscribe(ctx, store.ContentTables...)
	if err != nil {
		slog.Error("live subscribe failed", "error", err)
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "subscribe failed"),
			time.Now().Add(liveWriteWait))
		return
	}
	defer release()

	// Reader loop: the client never sends data frames, but reading is what
	// surfaces close frames and keeps the pong handler firing.
	conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
