// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"dripcare/internal/livesync"
	"dripcare/internal/models"
)

const pageTextColumns = `id, section_key, text_key, text_value, text_type, order_index, created_at, updated_at`

// PageTextStore handles all page copy database operations.
type PageTextStore struct {
	db  *sql.DB
	bus livesync.Publisher
}

// NewPageTextStore creates a new PageTextStore with the given database
// connection and change bus.
func NewPageTextStore(db *sql.DB, bus livesync.Publisher) *PageTextStore {
	return &PageTextStore{db: db, bus: bus}
}

// List returns all page texts ordered by section, then order index.
func (s *PageTextStore) List(ctx context.Context) ([]models.PageText, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+pageTextColumns+`
		FROM page_texts
		ORDER BY section_key ASC, order_index ASC, text_key ASC
	`)
	if err != nil {
		return nil, fetchErr("list page texts", err)
	}
	defer rows.Close()

	var items []models.PageText
	for rows.Next() {
		var t models.PageText
		if err := rows.Scan(
			&t.ID, &t.SectionKey, &t.TextKey, &t.TextValue, &t.TextType,
			&t.OrderIndex, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fetchErr("scan page text", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fetchErr("list page texts", err)
	}
	return items, nil
}

// ListGrouped returns all page texts as a section→key→value map, the shape
// the public site consumes.
func (s *PageTextStore) ListGrouped(ctx context.Context) (models.PageTexts, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return models.GroupPageTexts(items), nil
}

// FindByID retrieves a page text by its UUID. Returns nil if not found.
func (s *PageTextStore) FindByID(ctx context.Context, id uuid.UUID) (*models.PageText, error) {
	t := &models.PageText{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+pageTextColumns+`
		FROM page_texts WHERE id = $1
	`, id).Scan(
		&t.ID, &t.SectionKey, &t.TextKey, &t.TextValue, &t.TextType,
		&t.OrderIndex, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("find page text by id", err)
	}
	return t, nil
}

// Create inserts a new page text and returns it with the generated ID.
func (s *PageTextStore) Create(ctx context.Context, t *models.PageText) (*models.PageText, error) {
	result := &models.PageText{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO page_texts (section_key, text_key, text_value, text_type, order_index)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+pageTextColumns+`
	`, t.SectionKey, t.TextKey, t.TextValue, t.TextType, t.OrderIndex).Scan(
		&result.ID, &result.SectionKey, &result.TextKey, &result.TextValue,
		&result.TextType, &result.OrderIndex, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, writeErr("create page text", err)
	}
	notify(ctx, s.bus, TablePageTexts, livesync.ActionInsert, result.ID)
	return result, nil
}

// UpdateValue changes only the text value of an existing entry. This is
// the common path: editors rewrite copy, not addressing keys.
func (s *PageTextStore) UpdateValue(ctx context.Context, id uuid.UUID, value string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE page_texts SET text_value = $1, updated_at = NOW() WHERE id = $2
	`, value, id)
	if err != nil {
		return writeErr("update page text value", err)
	}
	notify(ctx, s.bus, TablePageTexts, livesync.ActionUpdate, id)
	return nil
}

// Update modifies an existing page text in full.
func (s *PageTextStore) Update(ctx context.Context, t *models.PageText) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE page_texts SET
			section_key = $1, text_key = $2, text_value = $3,
			text_type = $4, order_index = $5, updated_at = NOW()
		WHERE id = $6
	`, t.SectionKey, t.TextKey, t.TextValue, t.TextType, t.OrderIndex, t.ID)
	if err != nil {
		return writeErr("update page text", err)
	}
	notify(ctx, s.bus, TablePageTexts, livesync.ActionUpdate, t.ID)
	return nil
}

// Upsert inserts a page text or, when the (section, key) pair already
// exists, overwrites its value and type. Used by the seeder and the bulk
// save endpoint.
func (s *PageTextStore) Upsert(ctx context.Context, t *models.PageText) (*models.PageText, error) {
	result := &models.PageText{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO page_texts (section_key, text_key, text_value, text_type, order_index)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (section_key, text_key) DO UPDATE
			SET text_value = EXCLUDED.text_value,
			    text_type = EXCLUDED.text_type,
			    order_index = EXCLUDED.order_index,
			    updated_at = NOW()
		RETURNING `+pageTextColumns+`
	`, t.SectionKey, t.TextKey, t.TextValue, t.TextType, t.OrderIndex).Scan(
		&result.ID, &result.SectionKey, &result.TextKey, &result.TextValue,
		&result.TextType, &result.OrderIndex, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, writeErr("upsert page text", err)
	}
	notify(ctx, s.bus, TablePageTexts, livesync.ActionUpdate, result.ID)
	return result, nil
}

// SaveMany upserts a batch of page texts in one transaction. One change
// event is published for the whole batch.
func (s *PageTextStore) SaveMany(ctx context.Context, texts []models.PageText) error {
	if len(texts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return writeErr("save page texts", fmt.Errorf("begin: %w", err))
	}
	defer tx.Rollback()

	for _, t := range texts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO page_texts (section_key, text_key, text_value, text_type, order_index)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (section_key, text_key) DO UPDATE
				SET text_value = EXCLUDED.text_value,
				    text_type = EXCLUDED.text_type,
				    order_index = EXCLUDED.order_index,
				    updated_at = NOW()
		`, t.SectionKey, t.TextKey, t.TextValue, t.TextType, t.OrderIndex); err != nil {
			return writeErr("save page texts", fmt.Errorf("%s/%s: %w", t.SectionKey, t.TextKey, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return writeErr("save page texts", fmt.Errorf("commit: %w", err))
	}
	notify(ctx, s.bus, TablePageTexts, livesync.ActionUpdate, uuid.Nil)
	return nil
}

// Delete removes a page text by ID. Deleting an absent row is a no-op.
func (s *PageTextStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM page_texts WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete page text", err)
	}
	notify(ctx, s.bus, TablePageTexts, livesync.ActionDelete, id)
	return nil
}
