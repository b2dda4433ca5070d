// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package livesync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// channelPrefix namespaces change channels in Valkey.
	channelPrefix = "changes:"

	// subscribeBuffer is the per-subscription event channel capacity.
	// Slow consumers drop events rather than block the bus; a dropped
	// event only costs an extra re-list on the next one.
	subscribeBuffer = 16
)

// RedisBroker publishes and subscribes change events through Valkey
// pub/sub, one channel per table, so notifications reach every running
// instance and every connected admin session.
type RedisBroker struct {
	client *redis.Client
}

// NewRedisBroker wraps an existing Valkey client as a change broker.
func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

// ConnectValkey creates a Valkey client and verifies the connection with a ping.
func ConnectValkey(host, port, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", fmt.Sprintf("%s:%s", host, port))
	return client, nil
}

// Publish sends a change event on the table's channel.
func (b *RedisBroker) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("livesync marshal: %w", err)
	}
	if err := b.client.Publish(ctx, channelPrefix+ev.Table, payload).Err(); err != nil {
		return fmt.Errorf("livesync publish: %w", err)
	}
	return nil
}

// Subscribe opens a Valkey subscription for the given tables and decodes
// incoming messages onto the returned channel. The release function closes
// the subscription and the channel; it is idempotent.
func (b *RedisBroker) Subscribe(ctx context.Context, tables ...string) (<-chan Event, func(), error) {
	channels := make([]string, len(tables))
	for i, t := range tables {
		channels[i] = channelPrefix + t
	}

	sub := b.client.Subscribe(ctx, channels...)

	// Force the subscription to be established before returning so callers
	// don't miss events published right after Subscribe.
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, nil, fmt.Errorf("livesync subscribe: %w", err)
	}

	out := make(chan Event, subscribeBuffer)
	var once sync.Once
	release := func() {
		once.Do(func() {
			sub.Close() // terminates the pump goroutine via channel close
		})
	}

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				slog.Warn("livesync bad payload", "channel", msg.Channel, "error", err)
				continue
			}
			select {
			case out <- ev:
			default:
				slog.Debug("livesync subscriber lagging, event dropped", "table", ev.Table)
			}
		}
	}()

	return out, release, nil
}
