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

const glossaryColumns = `id, term, definition, order_position, is_active, created_at, updated_at`

// GlossaryStore handles all glossary database operations.
type GlossaryStore struct {
	db  *sql.DB
	bus livesync.Publisher
}

// NewGlossaryStore creates a new GlossaryStore with the given database
// connection and change bus.
func NewGlossaryStore(db *sql.DB, bus livesync.Publisher) *GlossaryStore {
	return &GlossaryStore{db: db, bus: bus}
}

// List returns glossary terms ordered by position. With onlyActive set,
// hidden terms are excluded.
func (s *GlossaryStore) List(ctx context.Context, onlyActive bool) ([]models.GlossaryTerm, error) {
	query := `SELECT ` + glossaryColumns + ` FROM glossary_terms`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY order_position ASC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fetchErr("list glossary terms", err)
	}
	defer rows.Close()

	var items []models.GlossaryTerm
	for rows.Next() {
		var g models.GlossaryTerm
		if err := rows.Scan(
			&g.ID, &g.Term, &g.Definition, &g.OrderPosition,
			&g.IsActive, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fetchErr("scan glossary term", err)
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fetchErr("list glossary terms", err)
	}
	return items, nil
}

// FindByID retrieves a glossary term by its UUID. Returns nil if not found.
func (s *GlossaryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.GlossaryTerm, error) {
	g := &models.GlossaryTerm{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+glossaryColumns+`
		FROM glossary_terms WHERE id = $1
	`, id).Scan(
		&g.ID, &g.Term, &g.Definition, &g.OrderPosition,
		&g.IsActive, &g.CreatedAt, &g.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("find glossary term by id", err)
	}
	return g, nil
}

// Create inserts a new glossary term at the end of the list.
func (s *GlossaryStore) Create(ctx context.Context, g *models.GlossaryTerm) (*models.GlossaryTerm, error) {
	result := &models.GlossaryTerm{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO glossary_terms (term, definition, order_position, is_active)
		VALUES ($1, $2, (SELECT COALESCE(MAX(order_position), 0) + 1 FROM glossary_terms), $3)
		RETURNING `+glossaryColumns+`
	`, g.Term, g.Definition, g.IsActive).Scan(
		&result.ID, &result.Term, &result.Definition, &result.OrderPosition,
		&result.IsActive, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, writeErr("create glossary term", err)
	}
	notify(ctx, s.bus, TableGlossaryTerms, livesync.ActionInsert, result.ID)
	return result, nil
}

// Update modifies an existing glossary term.
func (s *GlossaryStore) Update(ctx context.Context, g *models.GlossaryTerm) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE glossary_terms SET
			term = $1, definition = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
	`, g.Term, g.Definition, g.IsActive, g.ID)
	if err != nil {
		return writeErr("update glossary term", err)
	}
	notify(ctx, s.bus, TableGlossaryTerms, livesync.ActionUpdate, g.ID)
	return nil
}

// SetActive toggles a glossary term's public visibility.
func (s *GlossaryStore) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE glossary_terms SET is_active = $1, updated_at = NOW() WHERE id = $2
	`, active, id)
	if err != nil {
		return writeErr("set glossary term active", err)
	}
	notify(ctx, s.bus, TableGlossaryTerms, livesync.ActionUpdate, id)
	return nil
}

// Reorder renumbers glossary terms so the submitted ids occupy positions 1..n.
func (s *GlossaryStore) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if err := renumber(ctx, s.db, TableGlossaryTerms, "order_position", ids); err != nil {
		return writeErr("reorder glossary terms", err)
	}
	notify(ctx, s.bus, TableGlossaryTerms, livesync.ActionUpdate, uuid.Nil)
	return nil
}

// Delete removes a glossary term by ID. Deleting an absent row is a no-op.
func (s *GlossaryStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM glossary_terms WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete glossary term", err)
	}
	notify(ctx, s.bus, TableGlossaryTerms, livesync.ActionDelete, id)
	return nil
}
