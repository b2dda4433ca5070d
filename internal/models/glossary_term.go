// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// GlossaryTerm is one term/definition pair in the public glossary.
type GlossaryTerm struct {
	ID            uuid.UUID `json:"id"`
	Term          string    `json:"term"`
	Definition    string    `json:"definition"`
	OrderPosition int       `json:"order_position"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
