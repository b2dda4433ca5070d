// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"dripcare/internal/livesync"
	"dripcare/internal/models"
)

const therapyColumns = `id, title, subtitle, description, benefits, components,
	physiological_effects, important_considerations, color_theme, icon,
	order_position, is_active, created_at, updated_at`

// TherapyStore handles all therapy database operations. The list fields
// travel as JSONB columns and are marshalled at the store boundary.
type TherapyStore struct {
	db  *sql.DB
	bus livesync.Publisher
}

// NewTherapyStore creates a new TherapyStore with the given database
// connection and change bus.
func NewTherapyStore(db *sql.DB, bus livesync.Publisher) *TherapyStore {
	return &TherapyStore{db: db, bus: bus}
}

// jsonArg marshals a slice for a JSONB parameter. A nil slice is stored
// as an empty array, never SQL NULL.
func jsonArg(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb: %w", err)
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

func scanTherapy(row interface{ Scan(...any) error }) (*models.Therapy, error) {
	t := &models.Therapy{}
	var benefits, components, effects []byte
	err := row.Scan(
		&t.ID, &t.Title, &t.Subtitle, &t.Description, &benefits, &components,
		&effects, &t.ImportantConsiderations, &t.ColorTheme, &t.Icon,
		&t.OrderPosition, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(benefits, &t.Benefits); err != nil {
		return nil, fmt.Errorf("decode benefits: %w", err)
	}
	if err := json.Unmarshal(components, &t.Components); err != nil {
		return nil, fmt.Errorf("decode components: %w", err)
	}
	if err := json.Unmarshal(effects, &t.PhysiologicalEffects); err != nil {
		return nil, fmt.Errorf("decode physiological effects: %w", err)
	}
	return t, nil
}

// List returns therapies ordered by position. With onlyActive set, hidden
// therapies are excluded; the editor always lists everything.
func (s *TherapyStore) List(ctx context.Context, onlyActive bool) ([]models.Therapy, error) {
	query := `SELECT ` + therapyColumns + ` FROM therapies`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY order_position ASC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fetchErr("list therapies", err)
	}
	defer rows.Close()

	var items []models.Therapy
	for rows.Next() {
		t, err := scanTherapy(rows)
		if err != nil {
			return nil, fetchErr("scan therapy", err)
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fetchErr("list therapies", err)
	}
	return items, nil
}

// FindByID retrieves a therapy by its UUID. Returns nil if not found.
func (s *TherapyStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Therapy, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+therapyColumns+` FROM therapies WHERE id = $1
	`, id)
	t, err := scanTherapy(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("find therapy by id", err)
	}
	return t, nil
}

// Create inserts a new therapy and returns it with the generated ID.
func (s *TherapyStore) Create(ctx context.Context, t *models.Therapy) (*models.Therapy, error) {
	benefits, err := jsonArg(t.Benefits)
	if err != nil {
		return nil, writeErr("create therapy", err)
	}
	components, err := jsonArg(t.Components)
	if err != nil {
		return nil, writeErr("create therapy", err)
	}
	effects, err := jsonArg(t.PhysiologicalEffects)
	if err != nil {
		return nil, writeErr("create therapy", err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO therapies (title, subtitle, description, benefits, components,
			physiological_effects, important_considerations, color_theme, icon,
			order_position, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+therapyColumns+`
	`, t.Title, t.Subtitle, t.Description, benefits, components, effects,
		t.ImportantConsiderations, models.ParseColorTheme(string(t.ColorTheme)),
		t.Icon, t.OrderPosition, t.IsActive)

	result, err := scanTherapy(row)
	if err != nil {
		return nil, writeErr("create therapy", err)
	}
	notify(ctx, s.bus, TableTherapies, livesync.ActionInsert, result.ID)
	return result, nil
}

// Update modifies an existing therapy.
func (s *TherapyStore) Update(ctx context.Context, t *models.Therapy) error {
	benefits, err := jsonArg(t.Benefits)
	if err != nil {
		return writeErr("update therapy", err)
	}
	components, err := jsonArg(t.Components)
	if err != nil {
		return writeErr("update therapy", err)
	}
	effects, err := jsonArg(t.PhysiologicalEffects)
	if err != nil {
		return writeErr("update therapy", err)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE therapies SET
			title = $1, subtitle = $2, description = $3, benefits = $4,
			components = $5, physiological_effects = $6,
			important_considerations = $7, color_theme = $8, icon = $9,
			order_position = $10, is_active = $11, updated_at = NOW()
		WHERE id = $12
	`, t.Title, t.Subtitle, t.Description, benefits, components, effects,
		t.ImportantConsiderations, models.ParseColorTheme(string(t.ColorTheme)),
		t.Icon, t.OrderPosition, t.IsActive, t.ID)
	if err != nil {
		return writeErr("update therapy", err)
	}
	notify(ctx, s.bus, TableTherapies, livesync.ActionUpdate, t.ID)
	return nil
}

// SetActive toggles a therapy's public visibility without touching any
// other field.
func (s *TherapyStore) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE therapies SET is_active = $1, updated_at = NOW() WHERE id = $2
	`, active, id)
	if err != nil {
		return writeErr("set therapy active", err)
	}
	notify(ctx, s.bus, TableTherapies, livesync.ActionUpdate, id)
	return nil
}

// Reorder renumbers therapies so the submitted ids occupy positions 1..n.
func (s *TherapyStore) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if err := renumber(ctx, s.db, TableTherapies, "order_position", ids); err != nil {
		return writeErr("reorder therapies", err)
	}
	notify(ctx, s.bus, TableTherapies, livesync.ActionUpdate, uuid.Nil)
	return nil
}

// Delete removes a therapy by ID. Deleting an absent row is a no-op.
func (s *TherapyStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM therapies WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete therapy", err)
	}
	notify(ctx, s.bus, TableTherapies, livesync.ActionDelete, id)
	return nil
}
