// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package livesync

import (
	"context"
	"log/slog"
	"sync"
)

// ListFunc loads the current full contents of a collection.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// Watcher keeps an in-memory snapshot of a collection fresh by re-listing
// on every change event, without diffing payloads. Consistency is
// last-resolved-wins: readers observing two watchers of the same table can
// momentarily see different generations, which is the accepted tradeoff of
// refetch-based sync. A failed re-list keeps the previous snapshot.
type Watcher[T any] struct {
	table string
	list  ListFunc[T]

	mu    sync.RWMutex
	items []T

	release func()
	done    chan struct{}
}

// Watch performs an initial list, subscribes to the table's change channel,
// and starts the refresh loop. The initial list error is returned so
// callers can distinguish "empty" from "backend down" at startup; after
// that, list failures only log.
func Watch[T any](ctx context.Context, broker Broker, table string, list ListFunc[T]) (*Watcher[T], error) {
	w := &Watcher[T]{
		table: table,
		list:  list,
		done:  make(chan struct{}),
	}

	items, err := list(ctx)
	if err != nil {
		return nil, err
	}
	w.items = items

	events, release, err := broker.Subscribe(ctx, table)
	if err != nil {
		return nil, err
	}
	w.release = release

	go func() {
		defer close(w.done)
		for range events {
			w.refresh(ctx)
		}
	}()

	return w, nil
}

// Snapshot returns the latest successfully listed items. The returned slice
// must not be mutated by callers.
func (w *Watcher[T]) Snapshot() []T {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.items
}

// Close releases the subscription and waits for the refresh loop to stop.
// Safe to call more than once.
func (w *Watcher[T]) Close() {
	w.release()
	<-w.done
}

func (w *Watcher[T]) refresh(ctx context.Context) {
	items, err := w.list(ctx)
	if err != nil {
		slog.Error("livesync refresh failed, keeping previous snapshot", "table", w.table, "error", err)
		return
	}
	w.mu.Lock()
	w.items = items
	w.mu.Unlock()
}
