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

const nursingServiceColumns = `id, title, description, price, price_unit, color, order_index, created_at, updated_at`

// NursingServiceStore handles all nursing service database operations.
type NursingServiceStore struct {
	db  *sql.DB
	bus livesync.Publisher
}

// NewNursingServiceStore creates a new NursingServiceStore with the given
// database connection and change bus.
func NewNursingServiceStore(db *sql.DB, bus livesync.Publisher) *NursingServiceStore {
	return &NursingServiceStore{db: db, bus: bus}
}

// List returns all nursing services ordered by index.
func (s *NursingServiceStore) List(ctx context.Context) ([]models.NursingService, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+nursingServiceColumns+`
		FROM nursing_services
		ORDER BY order_index ASC, created_at ASC
	`)
	if err != nil {
		return nil, fetchErr("list nursing services", err)
	}
	defer rows.Close()

	var items []models.NursingService
	for rows.Next() {
		var n models.NursingService
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Description, &n.Price, &n.PriceUnit,
			&n.Color, &n.OrderIndex, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, fetchErr("scan nursing service", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fetchErr("list nursing services", err)
	}
	return items, nil
}

// FindByID retrieves a nursing service by its UUID. Returns nil if not found.
func (s *NursingServiceStore) FindByID(ctx context.Context, id uuid.UUID) (*models.NursingService, error) {
	n := &models.NursingService{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+nursingServiceColumns+`
		FROM nursing_services WHERE id = $1
	`, id).Scan(
		&n.ID, &n.Title, &n.Description, &n.Price, &n.PriceUnit,
		&n.Color, &n.OrderIndex, &n.CreatedAt, &n.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("find nursing service by id", err)
	}
	return n, nil
}

// Create inserts a new nursing service and returns it with the generated ID.
func (s *NursingServiceStore) Create(ctx context.Context, n *models.NursingService) (*models.NursingService, error) {
	result := &models.NursingService{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO nursing_services (title, description, price, price_unit, color, order_index)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+nursingServiceColumns+`
	`, n.Title, n.Description, n.Price, n.PriceUnit, n.Color, n.OrderIndex).Scan(
		&result.ID, &result.Title, &result.Description, &result.Price,
		&result.PriceUnit, &result.Color, &result.OrderIndex,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, writeErr("create nursing service", err)
	}
	notify(ctx, s.bus, TableNursingServices, livesync.ActionInsert, result.ID)
	return result, nil
}

// Update modifies an existing nursing service.
func (s *NursingServiceStore) Update(ctx context.Context, n *models.NursingService) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE nursing_services SET
			title = $1, description = $2, price = $3, price_unit = $4,
			color = $5, order_index = $6, updated_at = NOW()
		WHERE id = $7
	`, n.Title, n.Description, n.Price, n.PriceUnit, n.Color, n.OrderIndex, n.ID)
	if err != nil {
		return writeErr("update nursing service", err)
	}
	notify(ctx, s.bus, TableNursingServices, livesync.ActionUpdate, n.ID)
	return nil
}

// Reorder renumbers nursing services so the submitted ids occupy positions 1..n.
func (s *NursingServiceStore) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if err := renumber(ctx, s.db, TableNursingServices, "order_index", ids); err != nil {
		return writeErr("reorder nursing services", err)
	}
	notify(ctx, s.bus, TableNursingServices, livesync.ActionUpdate, uuid.Nil)
	return nil
}

// Delete removes a nursing service by ID. Deleting an absent row is a no-op.
func (s *NursingServiceStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM nursing_services WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete nursing service", err)
	}
	notify(ctx, s.bus, TableNursingServices, livesync.ActionDelete, id)
	return nil
}
