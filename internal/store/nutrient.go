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

const nutrientColumns = `id, name, active_ingredient, description, registry_number, order_index, created_at, updated_at`

// NutrientStore handles all nutrient database operations. Nutrients have
// no visibility flag, so admin and public reads share the same List.
type NutrientStore struct {
	db  *sql.DB
	bus livesync.Publisher
}

// NewNutrientStore creates a new NutrientStore with the given database
// connection and change bus.
func NewNutrientStore(db *sql.DB, bus livesync.Publisher) *NutrientStore {
	return &NutrientStore{db: db, bus: bus}
}

// List returns all nutrients ordered by index.
func (s *NutrientStore) List(ctx context.Context) ([]models.Nutrient, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+nutrientColumns+`
		FROM nutrients
		ORDER BY order_index ASC, created_at ASC
	`)
	if err != nil {
		return nil, fetchErr("list nutrients", err)
	}
	defer rows.Close()

	var items []models.Nutrient
	for rows.Next() {
		var n models.Nutrient
		if err := rows.Scan(
			&n.ID, &n.Name, &n.ActiveIngredient, &n.Description,
			&n.RegistryNumber, &n.OrderIndex, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, fetchErr("scan nutrient", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fetchErr("list nutrients", err)
	}
	return items, nil
}

// FindByID retrieves a nutrient by its UUID. Returns nil if not found.
func (s *NutrientStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Nutrient, error) {
	n := &models.Nutrient{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+nutrientColumns+`
		FROM nutrients WHERE id = $1
	`, id).Scan(
		&n.ID, &n.Name, &n.ActiveIngredient, &n.Description,
		&n.RegistryNumber, &n.OrderIndex, &n.CreatedAt, &n.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("find nutrient by id", err)
	}
	return n, nil
}

// Create inserts a new nutrient and returns it with the generated ID.
func (s *NutrientStore) Create(ctx context.Context, n *models.Nutrient) (*models.Nutrient, error) {
	result := &models.Nutrient{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO nutrients (name, active_ingredient, description, registry_number, order_index)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+nutrientColumns+`
	`, n.Name, n.ActiveIngredient, n.Description, n.RegistryNumber, n.OrderIndex).Scan(
		&result.ID, &result.Name, &result.ActiveIngredient, &result.Description,
		&result.RegistryNumber, &result.OrderIndex, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, writeErr("create nutrient", err)
	}
	notify(ctx, s.bus, TableNutrients, livesync.ActionInsert, result.ID)
	return result, nil
}

// Update modifies an existing nutrient.
func (s *NutrientStore) Update(ctx context.Context, n *models.Nutrient) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE nutrients SET
			name = $1, active_ingredient = $2, description = $3,
			registry_number = $4, order_index = $5, updated_at = NOW()
		WHERE id = $6
	`, n.Name, n.ActiveIngredient, n.Description, n.RegistryNumber, n.OrderIndex, n.ID)
	if err != nil {
		return writeErr("update nutrient", err)
	}
	notify(ctx, s.bus, TableNutrients, livesync.ActionUpdate, n.ID)
	return nil
}

// Reorder renumbers nutrients so the submitted ids occupy positions 1..n.
func (s *NutrientStore) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if err := renumber(ctx, s.db, TableNutrients, "order_index", ids); err != nil {
		return writeErr("reorder nutrients", err)
	}
	notify(ctx, s.bus, TableNutrients, livesync.ActionUpdate, uuid.Nil)
	return nil
}

// Delete removes a nutrient by ID. Deleting an absent row is a no-op.
func (s *NutrientStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM nutrients WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete nutrient", err)
	}
	notify(ctx, s.bus, TableNutrients, livesync.ActionDelete, id)
	return nil
}
