// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package livesync carries change notifications between the stores and
// anything that wants to refresh on remote mutation: watchers inside this
// process and websocket clients in other browser tabs or sessions.
// Consumers never inspect the event payload beyond routing: on any event
// for a table they re-list that table in full.
package livesync

import (
	"context"

	"github.com/google/uuid"
)

// Action is the kind of mutation that produced a change event.
type Action string

const (
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Event is one change notification for a collection. Events are advisory:
// subscribers must not trust the payload as an accurate diff and should
// re-list the table instead.
type Event struct {
	Table  string    `json:"table"`
	Action Action    `json:"action"`
	ID     uuid.UUID `json:"id"`
}

// Publisher is the narrow side of the bus handed to the stores.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Broker is the full publish/subscribe contract. Subscribe returns a
// receive channel for the named tables and a release function; the release
// function is safe to call more than once and must be called on teardown.
// An in-memory implementation substitutes for Valkey in tests.
type Broker interface {
	Publisher
	Subscribe(ctx context.Context, tables ...string) (<-chan Event, func(), error)
}
