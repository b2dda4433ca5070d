// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"dripcare/internal/models"
	"dripcare/internal/store"
)

// Public serves the read-only content endpoints for the site. Visitors
// only ever see active rows, already ordered. A broken read degrades to
// an empty body with a logged error; the site renders its fallback copy
// instead of an error page.
type Public struct {
	pageTexts    *store.PageTextStore
	therapies    *store.TherapyStore
	nutrients    *store.NutrientStore
	faqs         *store.FAQStore
	glossary     *store.GlossaryStore
	nursing      *store.NursingServiceStore
	testimonials *store.TestimonialStore
}

// NewPublic creates a new Public handler group.
func NewPublic(
	pageTexts *store.PageTextStore,
	therapies *store.TherapyStore,
	nutrients *store.NutrientStore,
	faqs *store.FAQStore,
	glossary *store.GlossaryStore,
	nursing *store.NursingServiceStore,
	testimonials *store.TestimonialStore,
) *Public {
	return &Public{
		pageTexts:    pageTexts,
		therapies:    therapies,
		nutrients:    nutrients,
		faqs:         faqs,
		glossary:     glossary,
		nursing:      nursing,
		testimonials: testimonials,
	}
}

// degraded logs a failed public read. The response still goes out as an
// empty 200 so the page keeps rendering.
func degraded(op string, err error) {
	slog.Error(op+" failed, serving empty", "error", err)
}

// PageTexts returns all page copy grouped by section and key.
func (h *Public) PageTexts(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.pageTexts.ListGrouped(r.Context())
	if err != nil {
		degraded("public page texts", err)
		grouped = models.PageTexts{}
	}
	respondJSON(w, http.StatusOK, grouped)
}

// Therapies returns the active therapies in display order.
func (h *Public) Therapies(w http.ResponseWriter, r *http.Request) {
	items, err := h.therapies.List(r.Context(), true)
	if err != nil {
		degraded("public therapies", err)
		items = nil
	}
	respondList(w, items)
}

// Nutrients returns the nutrient catalogue in display order.
func (h *Public) Nutrients(w http.ResponseWriter, r *http.Request) {
	items, err := h.nutrients.List(r.Context())
	if err != nil {
		degraded("public nutrients", err)
		items = nil
	}
	respondList(w, items)
}

// FAQ returns the active questions in display order.
func (h *Public) FAQ(w http.ResponseWriter, r *http.Request) {
	items, err := h.faqs.List(r.Context(), true)
	if err != nil {
		degraded("public faq", err)
		items = nil
	}
	respondList(w, items)
}

// Glossary returns the active glossary terms in display order.
func (h *Public) Glossary(w http.ResponseWriter, r *http.Request) {
	items, err := h.glossary.List(r.Context(), true)
	if err != nil {
		degraded("public glossary", err)
		items = nil
	}
	respondList(w, items)
}

// NursingServices returns the service catalogue in display order.
func (h *Public) NursingServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.nursing.List(r.Context())
	if err != nil {
		degraded("public nursing services", err)
		items = nil
	}
	respondList(w, items)
}

// Testimonials returns the active testimonials, newest first.
func (h *Public) Testimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.testimonials.List(r.Context(), true)
	if err != nil {
		degraded("public testimonials", err)
		items = nil
	}
	respondList(w, items)
}
