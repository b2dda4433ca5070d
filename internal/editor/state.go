// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"sync"

	"github.com/google/uuid"
)

// Mode is what a session's editor is currently doing.
type Mode string

const (
	ModeIdle     Mode = "idle"
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

// State is one session's editor position: at most one row open at a
// time, across all entity kinds.
type State struct {
	Mode   Mode      `json:"mode"`
	Entity string    `json:"entity,omitempty"`
	ID     uuid.UUID `json:"id,omitempty"`
}

// Manager tracks editor state per session. Opening a create or edit
// implicitly abandons whatever the session had open before, matching
// the single-form admin UI: there is never a second form to keep.
type Manager struct {
	mu     sync.Mutex
	states map[string]State
}

// NewManager creates an empty state manager.
func NewManager() *Manager {
	return &Manager{states: make(map[string]State)}
}

// StartCreate opens a blank form for the entity, abandoning any open edit.
func (m *Manager) StartCreate(sessionID, entity string) State {
	s := State{Mode: ModeCreating, Entity: entity}
	m.mu.Lock()
	m.states[sessionID] = s
	m.mu.Unlock()
	return s
}

// StartEdit opens the identified row for editing, abandoning any open
// create or edit, including one on a different entity kind.
func (m *Manager) StartEdit(sessionID, entity string, id uuid.UUID) State {
	s := State{Mode: ModeEditing, Entity: entity, ID: id}
	m.mu.Lock()
	m.states[sessionID] = s
	m.mu.Unlock()
	return s
}

// Cancel closes the session's editor without saving.
func (m *Manager) Cancel(sessionID string) State {
	m.mu.Lock()
	delete(m.states, sessionID)
	m.mu.Unlock()
	return State{Mode: ModeIdle}
}

// Current reports the session's editor state.
func (m *Manager) Current(sessionID string) State {
	m.mu.Lock()
	s, ok := m.states[sessionID]
	m.mu.Unlock()
	if !ok {
		return State{Mode: ModeIdle}
	}
	return s
}
