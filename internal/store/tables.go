// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"dripcare/internal/livesync"
)

// Table names double as livesync channel names, so stores, watchers and
// the websocket feed all agree on them.
const (
	TablePageTexts       = "page_texts"
	TableTherapies       = "therapies"
	TableNutrients       = "nutrients"
	TableFAQItems        = "faq_items"
	TableGlossaryTerms   = "glossary_terms"
	TableNursingServices = "nursing_services"
	TableTestimonials    = "testimonials"
)

// ContentTables lists every collection that publishes change events.
// The users table is deliberately absent: account changes are not
// broadcast to browsers.
var ContentTables = []string{
	TablePageTexts,
	TableTherapies,
	TableNutrients,
	TableFAQItems,
	TableGlossaryTerms,
	TableNursingServices,
	TableTestimonials,
}

// notify publishes a change event after a successful mutation. Delivery
// is best effort: the row is already committed, so a bus failure only
// costs staleness in other sessions and is logged rather than returned.
func notify(ctx context.Context, bus livesync.Publisher, table string, action livesync.Action, id uuid.UUID) {
	if bus == nil {
		return
	}
	ev := livesync.Event{Table: table, Action: action, ID: id}
	if err := bus.Publish(ctx, ev); err != nil {
		slog.Warn("change event not published", "table", table, "action", action, "error", err)
	}
}
