package livesync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemoryBrokerDeliversToMatchingTable(t *testing.T) {
	b := NewMemoryBroker()
	ctx := context.Background()

	ch, release, err := b.Subscribe(ctx, "faq_items")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer release()

	ev := Event{Table: "faq_items", Action: ActionInsert, ID: uuid.New()}
	if err := b.Publish(ctx, ev); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case got := <-ch:
		if got != ev {
			t.Errorf("got %+v, want %+v", got, ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestMemoryBrokerIgnoresOtherTables(t *testing.T) {
	b := NewMemoryBroker()
	ctx := context.Background()

	ch, release, err := b.Subscribe(ctx, "therapies")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer release()

	b.Publish(ctx, Event{Table: "nutrients", Action: ActionUpdate, ID: uuid.New()})

	select {
	case ev := <-ch:
		t.Errorf("unexpected event for other table: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryBrokerReleaseIsIdempotent(t *testing.T) {
	b := NewMemoryBroker()

	ch, release, err := b.Subscribe(context.Background(), "faq_items")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	release()
	release() // must not panic

	if _, ok := <-ch; ok {
		t.Error("expected channel closed after release")
	}
}

func TestWatcherRefreshesOnEvent(t *testing.T) {
	b := NewMemoryBroker()
	ctx := context.Background()

	var mu sync.Mutex
	items := []string{"first"}
	list := func(context.Context) ([]string, error) {
		mu.Lock()
		defer mu.Unlock()
		out := make([]string, len(items))
		copy(out, items)
		return out, nil
	}

	w, err := Watch(ctx, b, "glossary_terms", list)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if got := w.Snapshot(); len(got) != 1 || got[0] != "first" {
		t.Fatalf("initial snapshot: %v", got)
	}

	// Simulate an external mutation from a second session.
	mu.Lock()
	items = []string{"first", "second"}
	mu.Unlock()
	b.Publish(ctx, Event{Table: "glossary_terms", Action: ActionInsert, ID: uuid.New()})

	deadline := time.After(time.Second)
	for {
		if got := w.Snapshot(); len(got) == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("snapshot never refreshed: %v", w.Snapshot())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestWatcherKeepsSnapshotOnListFailure(t *testing.T) {
	b := NewMemoryBroker()
	ctx := context.Background()

	var mu sync.Mutex
	fail := false
	calls := 0
	list := func(context.Context) ([]string, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if fail {
			return nil, context.DeadlineExceeded
		}
		return []string{"kept"}, nil
	}

	w, err := Watch(ctx, b, "nutrients", list)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	mu.Lock()
	fail = true
	mu.Unlock()
	b.Publish(ctx, Event{Table: "nutrients", Action: ActionDelete, ID: uuid.New()})

	// Wait until the failing refresh has run.
	deadline := time.After(time.Second)
	for {
		mu.Lock()
		n := calls
		mu.Unlock()
		if n >= 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("refresh never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if got := w.Snapshot(); len(got) != 1 || got[0] != "kept" {
		t.Errorf("snapshot after failed refresh: %v, want [kept]", got)
	}
}

func TestWatcherCloseStopsRefreshLoop(t *testing.T) {
	b := NewMemoryBroker()
	ctx := context.Background()

	list := func(context.Context) ([]int, error) { return nil, nil }

	w, err := Watch(ctx, b, "testimonials", list)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	w.Close()
	w.Close() // idempotent

	// Publishing after close must not panic or deliver.
	b.Publish(ctx, Event{Table: "testimonials", Action: ActionUpdate, ID: uuid.New()})
}
