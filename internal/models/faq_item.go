// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// FAQItem is one question/answer entry in the public FAQ accordion.
// Inactive items stay in the editor but are excluded from public reads.
type FAQItem struct {
	ID            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	Answer        string    `json:"answer"`
	OrderPosition int       `json:"order_position"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
