package editor

import (
	"testing"

	"github.com/google/uuid"
)

func TestManagerStartEditAbandonsPreviousEdit(t *testing.T) {
	m := NewManager()
	sid := "session-1"
	a, b := uuid.New(), uuid.New()

	m.StartEdit(sid, "faq_items", a)
	// Opening a second row, even of another entity kind, replaces the first.
	m.StartEdit(sid, "therapies", b)

	got := m.Current(sid)
	if got.Mode != ModeEditing || got.Entity != "therapies" || got.ID != b {
		t.Errorf("state: %+v", got)
	}
}

func TestManagerStartCreateAbandonsEdit(t *testing.T) {
	m := NewManager()
	sid := "session-1"

	m.StartEdit(sid, "faq_items", uuid.New())
	m.StartCreate(sid, "glossary_terms")

	got := m.Current(sid)
	if got.Mode != ModeCreating || got.Entity != "glossary_terms" {
		t.Errorf("state: %+v", got)
	}
	if got.ID != uuid.Nil {
		t.Error("create state should carry no row id")
	}
}

func TestManagerCancel(t *testing.T) {
	m := NewManager()
	sid := "session-1"

	m.StartCreate(sid, "faq_items")
	m.Cancel(sid)

	if got := m.Current(sid); got.Mode != ModeIdle {
		t.Errorf("state after cancel: %+v", got)
	}

	// Cancel with nothing open is a no-op.
	m.Cancel(sid)
}

func TestManagerIsolatesSessions(t *testing.T) {
	m := NewManager()
	id := uuid.New()

	m.StartEdit("session-1", "faq_items", id)

	if got := m.Current("session-2"); got.Mode != ModeIdle {
		t.Errorf("other session state: %+v", got)
	}
	if got := m.Current("session-1"); got.ID != id {
		t.Errorf("first session state: %+v", got)
	}
}
