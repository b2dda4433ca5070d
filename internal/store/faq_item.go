// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"dripcare/internal/livesync"
	"dripcare/internal/models"
)

const faqColumns = `id, question, answer, order_position, is_active, created_at, updated_at`

// FAQStore handles all FAQ database operations.
type FAQStore struct {
	db  *sql.DB
	bus livesync.Publisher
}

// NewFAQStore creates a new FAQStore with the given database connection
// and change bus.
func NewFAQStore(db *sql.DB, bus livesync.Publisher) *FAQStore {
	return &FAQStore{db: db, bus: bus}
}

// List returns FAQ items ordered by position. With onlyActive set, hidden
// items are excluded.
func (s *FAQStore) List(ctx context.Context, onlyActive bool) ([]models.FAQItem, error) {
	query := `SELECT ` + faqColumns + ` FROM faq_items`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY order_position ASC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fetchErr("list faq items", err)
	}
	defer rows.Close()

	var items []models.FAQItem
	for rows.Next() {
		var f models.FAQItem
		if err := rows.Scan(
			&f.ID, &f.Question, &f.Answer, &f.OrderPosition,
			&f.IsActive, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fetchErr("scan faq item", err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fetchErr("list faq items", err)
	}
	return items, nil
}

// FindByID retrieves an FAQ item by its UUID. Returns nil if not found.
func (s *FAQStore) FindByID(ctx context.Context, id uuid.UUID) (*models.FAQItem, error) {
	f := &models.FAQItem{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+faqColumns+`
		FROM faq_items WHERE id = $1
	`, id).Scan(
		&f.ID, &f.Question, &f.Answer, &f.OrderPosition,
		&f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("find faq item by id", err)
	}
	return f, nil
}

// Create inserts a new FAQ item at the end of the list: its position is
// one past the current maximum, computed in the same statement so two
// concurrent creates cannot race to the same slot.
func (s *FAQStore) Create(ctx context.Context, f *models.FAQItem) (*models.FAQItem, error) {
	result := &models.FAQItem{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO faq_items (question, answer, order_position, is_active)
		VALUES ($1, $2, (SELECT COALESCE(MAX(order_position), 0) + 1 FROM faq_items), $3)
		RETURNING `+faqColumns+`
	`, f.Question, f.Answer, f.IsActive).Scan(
		&result.ID, &result.Question, &result.Answer, &result.OrderPosition,
		&result.IsActive, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, writeErr("create faq item", err)
	}
	notify(ctx, s.bus, TableFAQItems, livesync.ActionInsert, result.ID)
	return result, nil
}

// Update modifies an existing FAQ item's question and answer. Position
// changes go through Reorder.
func (s *FAQStore) Update(ctx context.Context, f *models.FAQItem) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE faq_items SET
			question = $1, answer = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
	`, f.Question, f.Answer, f.IsActive, f.ID)
	if err != nil {
		return writeErr("update faq item", err)
	}
	notify(ctx, s.bus, TableFAQItems, livesync.ActionUpdate, f.ID)
	return nil
}

// SetActive toggles an FAQ item's public visibility.
func (s *FAQStore) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE faq_items SET is_active = $1, updated_at = NOW() WHERE id = $2
	`, active, id)
	if err != nil {
		return writeErr("set faq item active", err)
	}
	notify(ctx, s.bus, TableFAQItems, livesync.ActionUpdate, id)
	return nil
}

// Reorder renumbers FAQ items so the submitted ids occupy positions 1..n.
func (s *FAQStore) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if err := renumber(ctx, s.db, TableFAQItems, "order_position", ids); err != nil {
		return writeErr("reorder faq items", err)
	}
	notify(ctx, s.bus, TableFAQItems, livesync.ActionUpdate, uuid.Nil)
	return nil
}

// Delete removes an FAQ item by ID. Deleting an absent row is a no-op.
func (s *FAQStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM faq_items WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete faq item", err)
	}
	notify(ctx, s.bus, TableFAQItems, livesync.ActionDelete, id)
	return nil
}
