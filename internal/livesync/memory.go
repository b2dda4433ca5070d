// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package livesync

import (
	"context"
	"sync"
)

// MemoryBroker is an in-process Broker for tests and single-instance
// deployments without Valkey. It mirrors RedisBroker's delivery semantics:
// buffered fan-out, drop on slow consumers.
type MemoryBroker struct {
	mu   sync.Mutex
	subs map[int]*memorySub
	next int
}

type memorySub struct {
	tables map[string]bool
	ch     chan Event
}

// NewMemoryBroker creates an empty in-memory broker.
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: make(map[int]*memorySub)}
}

// Publish fans the event out to every subscription watching its table.
func (b *MemoryBroker) Publish(_ context.Context, ev Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		if !sub.tables[ev.Table] {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
	return nil
}

// Subscribe registers interest in the given tables.
func (b *MemoryBroker) Subscribe(_ context.Context, tables ...string) (<-chan Event, func(), error) {
	sub := &memorySub{
		tables: make(map[string]bool, len(tables)),
		ch:     make(chan Event, subscribeBuffer),
	}
	for _, t := range tables {
		sub.tables[t] = true
	}

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(sub.ch)
		})
	}

	return sub.ch, release, nil
}
