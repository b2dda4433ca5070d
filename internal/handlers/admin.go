// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dripcare/internal/editor"
	"dripcare/internal/models"
	"dripcare/internal/store"
)

// Admin groups the content management HTTP handlers. Every mutation
// responds with the freshly re-listed collection so the editor UI always
// renders server state, never an optimistic guess.
type Admin struct {
	pageTexts    *store.PageTextStore
	therapies    *store.TherapyStore
	nutrients    *store.NutrientStore
	faqs         *store.FAQStore
	glossary     *store.GlossaryStore
	nursing      *store.NursingServiceStore
	testimonials *store.TestimonialStore
	edits        *editor.Manager
}

// NewAdmin creates a new Admin handler group with the given dependencies.
func NewAdmin(
	pageTexts *store.PageTextStore,
	therapies *store.TherapyStore,
	nutrients *store.NutrientStore,
	faqs *store.FAQStore,
	glossary *store.GlossaryStore,
	nursing *store.NursingServiceStore,
	testimonials *store.TestimonialStore,
	edits *editor.Manager,
) *Admin {
	return &Admin{
		pageTexts:    pageTexts,
		therapies:    therapies,
		nutrients:    nutrients,
		faqs:         faqs,
		glossary:     glossary,
		nursing:      nursing,
		testimonials: testimonials,
		edits:        edits,
	}
}

// parseForm reads the submission body, answering 400 on a malformed one.
func parseForm(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "malformed form body")
		return nil, false
	}
	return r.PostForm, true
}

// parseSpec runs a submission through the entity's form spec.
func parseSpec(w http.ResponseWriter, r *http.Request, spec *editor.FormSpec) (map[string]any, bool) {
	values, ok := parseForm(w, r)
	if !ok {
		return nil, false
	}
	fields, verr := spec.Parse(values)
	if verr != nil {
		respondValidation(w, verr)
		return nil, false
	}
	return fields, true
}

// reorderIDs reads the submitted id sequence for a reorder request.
func reorderIDs(w http.ResponseWriter, r *http.Request) ([]uuid.UUID, bool) {
	values, ok := parseForm(w, r)
	if !ok {
		return nil, false
	}
	raw := values["ids"]
	if len(raw) == 0 {
		respondError(w, http.StatusUnprocessableEntity, "no ids submitted")
		return nil, false
	}
	ids := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid id in sequence")
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}

// writeFailed reports a failed mutation, naming the operation but never
// leaking driver detail to the client.
func writeFailed(w http.ResponseWriter, op string, err error) {
	slog.Error(op+" failed", "error", err)
	respondError(w, http.StatusInternalServerError, op+" failed")
}

// fetchFailed reports a failed admin read. Unlike the public site, the
// editor must see that its listing is broken rather than an empty list.
func fetchFailed(w http.ResponseWriter, op string, err error) {
	slog.Error(op+" failed", "error", err)
	respondError(w, http.StatusInternalServerError, op+" failed")
}

func fstr(fields map[string]any, name string) string {
	v, _ := fields[name].(string)
	return v
}

func fint(fields map[string]any, name string) int {
	v, _ := fields[name].(int)
	return v
}

func fbool(fields map[string]any, name string) bool {
	v, _ := fields[name].(bool)
	return v
}

func flist(fields map[string]any, name string) []string {
	v, _ := fields[name].([]string)
	return v
}

func fpairs(fields map[string]any, name string) []models.PhysiologicalEffect {
	pairs, _ := fields[name].([]editor.Pair)
	out := make([]models.PhysiologicalEffect, len(pairs))
	for i, p := range pairs {
		out[i] = models.PhysiologicalEffect{Title: p.Title, Description: p.Description}
	}
	return out
}

// --- Editor state ---

// EditorState reports what the caller's editor has open.
func (a *Admin) EditorState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.edits.Current(editorKey(r)))
}

// BeginCreate opens a blank form for the entity in the URL, abandoning
// any previously open form.
func (a *Admin) BeginCreate(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	spec, ok := formSpecs[entity]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown entity")
		return
	}
	state := a.edits.StartCreate(editorKey(r), entity)
	respondJSON(w, http.StatusOK, map[string]any{"state": state, "fields": spec.Fields})
}

// BeginEdit opens the identified row for editing.
func (a *Admin) BeginEdit(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	spec, ok := formSpecs[entity]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown entity")
		return
	}
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	state := a.edits.StartEdit(editorKey(r), entity, id)
	respondJSON(w, http.StatusOK, map[string]any{"state": state, "fields": spec.Fields})
}

// CancelEdit closes the caller's editor without saving.
func (a *Admin) CancelEdit(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.edits.Cancel(editorKey(r)))
}

// --- Page texts ---

func (a *Admin) PageTextsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.pageTexts.List(r.Context())
	if err != nil {
		fetchFailed(w, "list page texts", err)
		return
	}
	respondList(w, items)
}

func (a *Admin) PageTextCreate(w http.ResponseWriter, r *http.Request) {
	fields, ok := parseSpec(w, r, pageTextSpec)
	if !ok {
		return
	}
	created, err := a.pageTexts.Create(r.Context(), &models.PageText{
		SectionKey: fstr(fields, "section_key"),
		TextKey:    fstr(fields, "text_key"),
		TextValue:  fstr(fields, "text_value"),
		TextType:   models.TextType(fstr(fields, "text_type")),
		OrderIndex: fint(fields, "order_index"),
	})
	if err != nil {
		writeFailed(w, "create page text", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.pageTexts.List(r.Context())
	respondJSON(w, http.StatusCreated, map[string]any{"item": created, "items": items})
}

func (a *Admin) PageTextUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	fields, ok := parseSpec(w, r, pageTextSpec)
	if !ok {
		return
	}
	err := a.pageTexts.Update(r.Context(), &models.PageText{
		ID:         id,
		SectionKey: fstr(fields, "section_key"),
		TextKey:    fstr(fields, "text_key"),
		TextValue:  fstr(fields, "text_value"),
		TextType:   models.TextType(fstr(fields, "text_type")),
		OrderIndex: fint(fields, "order_index"),
	})
	if err != nil {
		writeFailed(w, "update page text", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.pageTexts.List(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// PageTextUpdateValue rewrites only the copy of one entry, leaving its
// section, key, type and ordering untouched. This is the everyday editor
// path, so it skips the full form spec.
func (a *Admin) PageTextUpdateValue(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	values, ok := parseForm(w, r)
	if !ok {
		return
	}
	value := values.Get("text_value")
	if len(value) > maxBodyLen {
		respondValidation(w, &editor.ValidationError{
			Fields: map[string]string{"text_value": fmt.Sprintf("longer than %d characters", maxBodyLen)},
		})
		return
	}
	if err := a.pageTexts.UpdateValue(r.Context(), id, value); err != nil {
		writeFailed(w, "update page text value", err)
		return
	}
	items, _ := a.pageTexts.List(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// PageTextsSave bulk-upserts page copy. The body is a JSON array in the
// same shape the list endpoint returns; unknown fields are ignored.
func (a *Admin) PageTextsSave(w http.ResponseWriter, r *http.Request) {
	var batch []models.PageText
	if err := decodeJSONBody(r, &batch); err != nil {
		respondError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	for _, t := range batch {
		if t.SectionKey == "" || t.TextKey == "" {
			respondError(w, http.StatusUnprocessableEntity, "entry missing section or key")
			return
		}
	}
	if err := a.pageTexts.SaveMany(r.Context(), batch); err != nil {
		writeFailed(w, "save page texts", err)
		return
	}
	items, _ := a.pageTexts.List(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) PageTextDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteRow(w, r, "delete page text", func(r *http.Request, id uuid.UUID) error {
		return a.pageTexts.Delete(r.Context(), id)
	}, func(r *http.Request) (any, error) {
		return a.pageTexts.List(r.Context())
	})
}

// --- Therapies ---

func (a *Admin) TherapiesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.therapies.List(r.Context(), false)
	if err != nil {
		fetchFailed(w, "list therapies", err)
		return
	}
	respondList(w, items)
}

func (a *Admin) therapyFromForm(fields map[string]any) *models.Therapy {
	return &models.Therapy{
		Title:                   fstr(fields, "title"),
		Subtitle:                fstr(fields, "subtitle"),
		Description:             fstr(fields, "description"),
		Benefits:                flist(fields, "benefits"),
		Components:              flist(fields, "components"),
		PhysiologicalEffects:    fpairs(fields, "physiological_effects"),
		ImportantConsiderations: fstr(fields, "important_considerations"),
		ColorTheme:              models.ColorTheme(fstr(fields, "color_theme")),
		Icon:                    fstr(fields, "icon"),
		IsActive:                fbool(fields, "is_active"),
	}
}

func (a *Admin) TherapyCreate(w http.ResponseWriter, r *http.Request) {
	fields, ok := parseSpec(w, r, therapySpec)
	if !ok {
		return
	}
	t := a.therapyFromForm(fields)
	// New therapies append after the existing ones.
	existing, err := a.therapies.List(r.Context(), false)
	if err != nil {
		writeFailed(w, "create therapy", err)
		return
	}
	t.OrderPosition = len(existing) + 1

	created, err := a.therapies.Create(r.Context(), t)
	if err != nil {
		writeFailed(w, "create therapy", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.therapies.List(r.Context(), false)
	respondJSON(w, http.StatusCreated, map[string]any{"item": created, "items": items})
}

func (a *Admin) TherapyUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	current, err := a.therapies.FindByID(r.Context(), id)
	if err != nil {
		writeFailed(w, "update therapy", err)
		return
	}
	if current == nil {
		respondError(w, http.StatusNotFound, "therapy not found")
		return
	}
	fields, ok := parseSpec(w, r, therapySpec)
	if !ok {
		return
	}
	t := a.therapyFromForm(fields)
	t.ID = id
	t.OrderPosition = current.OrderPosition
	if err := a.therapies.Update(r.Context(), t); err != nil {
		writeFailed(w, "update therapy", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.therapies.List(r.Context(), false)
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) TherapySetActive(w http.ResponseWriter, r *http.Request) {
	a.setActive(w, r, "set therapy visibility", func(r *http.Request, id uuid.UUID, active bool) error {
		return a.therapies.SetActive(r.Context(), id, active)
	}, func(r *http.Request) (any, error) {
		return a.therapies.List(r.Context(), false)
	})
}

func (a *Admin) TherapiesReorder(w http.ResponseWriter, r *http.Request) {
	ids, ok := reorderIDs(w, r)
	if !ok {
		return
	}
	if err := a.therapies.Reorder(r.Context(), ids); err != nil {
		writeFailed(w, "reorder therapies", err)
		return
	}
	items, _ := a.therapies.List(r.Context(), false)
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) TherapyDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteRow(w, r, "delete therapy", func(r *http.Request, id uuid.UUID) error {
		return a.therapies.Delete(r.Context(), id)
	}, func(r *http.Request) (any, error) {
		return a.therapies.List(r.Context(), false)
	})
}

// --- Nutrients ---

func (a *Admin) NutrientsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.nutrients.List(r.Context())
	if err != nil {
		fetchFailed(w, "list nutrients", err)
		return
	}
	respondList(w, items)
}

func (a *Admin) NutrientCreate(w http.ResponseWriter, r *http.Request) {
	fields, ok := parseSpec(w, r, nutrientSpec)
	if !ok {
		return
	}
	created, err := a.nutrients.Create(r.Context(), &models.Nutrient{
		Name:             fstr(fields, "name"),
		ActiveIngredient: fstr(fields, "active_ingredient"),
		Description:      fstr(fields, "description"),
		RegistryNumber:   fstr(fields, "registry_number"),
		OrderIndex:       fint(fields, "order_index"),
	})
	if err != nil {
		writeFailed(w, "create nutrient", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.nutrients.List(r.Context())
	respondJSON(w, http.StatusCreated, map[string]any{"item": created, "items": items})
}

func (a *Admin) NutrientUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	fields, ok := parseSpec(w, r, nutrientSpec)
	if !ok {
		return
	}
	err := a.nutrients.Update(r.Context(), &models.Nutrient{
		ID:               id,
		Name:             fstr(fields, "name"),
		ActiveIngredient: fstr(fields, "active_ingredient"),
		Description:      fstr(fields, "description"),
		RegistryNumber:   fstr(fields, "registry_number"),
		OrderIndex:       fint(fields, "order_index"),
	})
	if err != nil {
		writeFailed(w, "update nutrient", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.nutrients.List(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) NutrientsReorder(w http.ResponseWriter, r *http.Request) {
	ids, ok := reorderIDs(w, r)
	if !ok {
		return
	}
	if err := a.nutrients.Reorder(r.Context(), ids); err != nil {
		writeFailed(w, "reorder nutrients", err)
		return
	}
	items, _ := a.nutrients.List(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) NutrientDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteRow(w, r, "delete nutrient", func(r *http.Request, id uuid.UUID) error {
		return a.nutrients.Delete(r.Context(), id)
	}, func(r *http.Request) (any, error) {
		return a.nutrients.List(r.Context())
	})
}

// --- FAQ items ---

func (a *Admin) FAQList(w http.ResponseWriter, r *http.Request) {
	items, err := a.faqs.List(r.Context(), false)
	if err != nil {
		fetchFailed(w, "list faq items", err)
		return
	}
	respondList(w, items)
}

func (a *Admin) FAQCreate(w http.ResponseWriter, r *http.Request) {
	fields, ok := parseSpec(w, r, faqSpec)
	if !ok {
		return
	}
	created, err := a.faqs.Create(r.Context(), &models.FAQItem{
		Question: fstr(fields, "question"),
		Answer:   fstr(fields, "answer"),
		IsActive: fbool(fields, "is_active"),
	})
	if err != nil {
		writeFailed(w, "create faq item", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.faqs.List(r.Context(), false)
	respondJSON(w, http.StatusCreated, map[string]any{"item": created, "items": items})
}

func (a *Admin) FAQUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	fields, ok := parseSpec(w, r, faqSpec)
	if !ok {
		return
	}
	err := a.faqs.Update(r.Context(), &models.FAQItem{
		ID:       id,
		Question: fstr(fields, "question"),
		Answer:   fstr(fields, "answer"),
		IsActive: fbool(fields, "is_active"),
	})
	if err != nil {
		writeFailed(w, "update faq item", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.faqs.List(r.Context(), false)
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) FAQSetActive(w http.ResponseWriter, r *http.Request) {
	a.setActive(w, r, "set faq visibility", func(r *http.Request, id uuid.UUID, active bool) error {
		return a.faqs.SetActive(r.Context(), id, active)
	}, func(r *http.Request) (any, error) {
		return a.faqs.List(r.Context(), false)
	})
}

func (a *Admin) FAQReorder(w http.ResponseWriter, r *http.Request) {
	ids, ok := reorderIDs(w, r)
	if !ok {
		return
	}
	if err := a.faqs.Reorder(r.Context(), ids); err != nil {
		writeFailed(w, "reorder faq items", err)
		return
	}
	items, _ := a.faqs.List(r.Context(), false)
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) FAQDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteRow(w, r, "delete faq item", func(r *http.Request, id uuid.UUID) error {
		return a.faqs.Delete(r.Context(), id)
	}, func(r *http.Request) (any, error) {
		return a.faqs.List(r.Context(), false)
	})
}

// --- Glossary terms ---

func (a *Admin) GlossaryList(w http.ResponseWriter, r *http.Request) {
	items, err := a.glossary.List(r.Context(), false)
	if err != nil {
		fetchFailed(w, "list glossary terms", err)
		return
	}
	respondList(w, items)
}

func (a *Admin) GlossaryCreate(w http.ResponseWriter, r *http.Request) {
	fields, ok := parseSpec(w, r, glossarySpec)
	if !ok {
		return
	}
	created, err := a.glossary.Create(r.Context(), &models.GlossaryTerm{
		Term:       fstr(fields, "term"),
		Definition: fstr(fields, "definition"),
		IsActive:   fbool(fields, "is_active"),
	})
	if err != nil {
		writeFailed(w, "create glossary term", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.glossary.List(r.Context(), false)
	respondJSON(w, http.StatusCreated, map[string]any{"item": created, "items": items})
}

func (a *Admin) GlossaryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	fields, ok := parseSpec(w, r, glossarySpec)
	if !ok {
		return
	}
	err := a.glossary.Update(r.Context(), &models.GlossaryTerm{
		ID:         id,
		Term:       fstr(fields, "term"),
		Definition: fstr(fields, "definition"),
		IsActive:   fbool(fields, "is_active"),
	})
	if err != nil {
		writeFailed(w, "update glossary term", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.glossary.List(r.Context(), false)
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) GlossarySetActive(w http.ResponseWriter, r *http.Request) {
	a.setActive(w, r, "set glossary visibility", func(r *http.Request, id uuid.UUID, active bool) error {
		return a.glossary.SetActive(r.Context(), id, active)
	}, func(r *http.Request) (any, error) {
		return a.glossary.List(r.Context(), false)
	})
}

func (a *Admin) GlossaryReorder(w http.ResponseWriter, r *http.Request) {
	ids, ok := reorderIDs(w, r)
	if !ok {
		return
	}
	if err := a.glossary.Reorder(r.Context(), ids); err != nil {
		writeFailed(w, "reorder glossary terms", err)
		return
	}
	items, _ := a.glossary.List(r.Context(), false)
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) GlossaryDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteRow(w, r, "delete glossary term", func(r *http.Request, id uuid.UUID) error {
		return a.glossary.Delete(r.Context(), id)
	}, func(r *http.Request) (any, error) {
		return a.glossary.List(r.Context(), false)
	})
}

// --- Nursing services ---

func (a *Admin) NursingServicesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.nursing.List(r.Context())
	if err != nil {
		fetchFailed(w, "list nursing services", err)
		return
	}
	respondList(w, items)
}

func (a *Admin) NursingServiceCreate(w http.ResponseWriter, r *http.Request) {
	fields, ok := parseSpec(w, r, nursingServiceSpec)
	if !ok {
		return
	}
	created, err := a.nursing.Create(r.Context(), &models.NursingService{
		Title:       fstr(fields, "title"),
		Description: fstr(fields, "description"),
		Price:       fint(fields, "price"),
		PriceUnit:   fstr(fields, "price_unit"),
		Color:       fstr(fields, "color"),
		OrderIndex:  fint(fields, "order_index"),
	})
	if err != nil {
		writeFailed(w, "create nursing service", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.nursing.List(r.Context())
	respondJSON(w, http.StatusCreated, map[string]any{"item": created, "items": items})
}

func (a *Admin) NursingServiceUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	fields, ok := parseSpec(w, r, nursingServiceSpec)
	if !ok {
		return
	}
	err := a.nursing.Update(r.Context(), &models.NursingService{
		ID:          id,
		Title:       fstr(fields, "title"),
		Description: fstr(fields, "description"),
		Price:       fint(fields, "price"),
		PriceUnit:   fstr(fields, "price_unit"),
		Color:       fstr(fields, "color"),
		OrderIndex:  fint(fields, "order_index"),
	})
	if err != nil {
		writeFailed(w, "update nursing service", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.nursing.List(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) NursingServicesReorder(w http.ResponseWriter, r *http.Request) {
	ids, ok := reorderIDs(w, r)
	if !ok {
		return
	}
	if err := a.nursing.Reorder(r.Context(), ids); err != nil {
		writeFailed(w, "reorder nursing services", err)
		return
	}
	items, _ := a.nursing.List(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) NursingServiceDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteRow(w, r, "delete nursing service", func(r *http.Request, id uuid.UUID) error {
		return a.nursing.Delete(r.Context(), id)
	}, func(r *http.Request) (any, error) {
		return a.nursing.List(r.Context())
	})
}

// --- Testimonials ---

func (a *Admin) TestimonialsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.testimonials.List(r.Context(), false)
	if err != nil {
		fetchFailed(w, "list testimonials", err)
		return
	}
	respondList(w, items)
}

func (a *Admin) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	fields, ok := parseSpec(w, r, testimonialSpec)
	if !ok {
		return
	}
	created, err := a.testimonials.Create(r.Context(), &models.Testimonial{
		Name:       fstr(fields, "name"),
		Role:       fstr(fields, "role"),
		Content:    fstr(fields, "content"),
		Rating:     fint(fields, "rating"),
		ColorTheme: models.ColorTheme(fstr(fields, "color_theme")),
		IsActive:   fbool(fields, "is_active"),
	})
	if err != nil {
		writeFailed(w, "create testimonial", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.testimonials.List(r.Context(), false)
	respondJSON(w, http.StatusCreated, map[string]any{"item": created, "items": items})
}

func (a *Admin) TestimonialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	fields, ok := parseSpec(w, r, testimonialSpec)
	if !ok {
		return
	}
	err := a.testimonials.Update(r.Context(), &models.Testimonial{
		ID:         id,
		Name:       fstr(fields, "name"),
		Role:       fstr(fields, "role"),
		Content:    fstr(fields, "content"),
		Rating:     fint(fields, "rating"),
		ColorTheme: models.ColorTheme(fstr(fields, "color_theme")),
		IsActive:   fbool(fields, "is_active"),
	})
	if err != nil {
		writeFailed(w, "update testimonial", err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := a.testimonials.List(r.Context(), false)
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *Admin) TestimonialSetActive(w http.ResponseWriter, r *http.Request) {
	a.setActive(w, r, "set testimonial visibility", func(r *http.Request, id uuid.UUID, active bool) error {
		return a.testimonials.SetActive(r.Context(), id, active)
	}, func(r *http.Request) (any, error) {
		return a.testimonials.List(r.Context(), false)
	})
}

func (a *Admin) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteRow(w, r, "delete testimonial", func(r *http.Request, id uuid.UUID) error {
		return a.testimonials.Delete(r.Context(), id)
	}, func(r *http.Request) (any, error) {
		return a.testimonials.List(r.Context(), false)
	})
}

// --- Shared mutation shapes ---

// setActive handles a visibility toggle: id from the URL, desired state
// from the "active" form value. The response carries the re-listed
// collection like every other mutation.
func (a *Admin) setActive(w http.ResponseWriter, r *http.Request, op string, fn func(*http.Request, uuid.UUID, bool) error, relist func(*http.Request) (any, error)) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	values, ok := parseForm(w, r)
	if !ok {
		return
	}
	active := values.Get("active") == "true"
	if err := fn(r, id, active); err != nil {
		writeFailed(w, op, err)
		return
	}
	items, _ := relist(r)
	respondJSON(w, http.StatusOK, map[string]any{"id": id, "is_active": active, "items": items})
}

// deleteRow handles a confirmed delete: id from the URL, confirm=true
// required in the body.
func (a *Admin) deleteRow(w http.ResponseWriter, r *http.Request, op string, fn func(*http.Request, uuid.UUID) error, relist func(*http.Request) (any, error)) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	if !confirmed(r) {
		respondError(w, http.StatusUnprocessableEntity, "confirmation required")
		return
	}
	if err := fn(r, id); err != nil {
		writeFailed(w, op, err)
		return
	}
	a.edits.Cancel(editorKey(r))
	items, _ := relist(r)
	respondJSON(w, http.StatusOK, map[string]any{"deleted": id, "items": items})
}
