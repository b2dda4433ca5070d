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

const testimonialColumns = `id, name, role, content, rating, color_theme, is_active, created_at, updated_at`

// TestimonialStore handles all testimonial database operations.
// Testimonials have no manual ordering; they list newest first.
type TestimonialStore struct {
	db  *sql.DB
	bus livesync.Publisher
}

// NewTestimonialStore creates a new TestimonialStore with the given
// database connection and change bus.
func NewTestimonialStore(db *sql.DB, bus livesync.Publisher) *TestimonialStore {
	return &TestimonialStore{db: db, bus: bus}
}

// List returns testimonials ordered by creation date descending. With
// onlyActive set, hidden testimonials are excluded.
func (s *TestimonialStore) List(ctx context.Context, onlyActive bool) ([]models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fetchErr("list testimonials", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Role, &t.Content, &t.Rating,
			&t.ColorTheme, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fetchErr("scan testimonial", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fetchErr("list testimonials", err)
	}
	return items, nil
}

// FindByID retrieves a testimonial by its UUID. Returns nil if not found.
func (s *TestimonialStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+testimonialColumns+`
		FROM testimonials WHERE id = $1
	`, id).Scan(
		&t.ID, &t.Name, &t.Role, &t.Content, &t.Rating,
		&t.ColorTheme, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("find testimonial by id", err)
	}
	return t, nil
}

// Create inserts a new testimonial and returns it with the generated ID.
// The color theme is normalized to a known value before storage.
func (s *TestimonialStore) Create(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	result := &models.Testimonial{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO testimonials (name, role, content, rating, color_theme, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+testimonialColumns+`
	`, t.Name, t.Role, t.Content, t.Rating,
		models.ParseColorTheme(string(t.ColorTheme)), t.IsActive).Scan(
		&result.ID, &result.Name, &result.Role, &result.Content, &result.Rating,
		&result.ColorTheme, &result.IsActive, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, writeErr("create testimonial", err)
	}
	notify(ctx, s.bus, TableTestimonials, livesync.ActionInsert, result.ID)
	return result, nil
}

// Update modifies an existing testimonial.
func (s *TestimonialStore) Update(ctx context.Context, t *models.Testimonial) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE testimonials SET
			name = $1, role = $2, content = $3, rating = $4,
			color_theme = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
	`, t.Name, t.Role, t.Content, t.Rating,
		models.ParseColorTheme(string(t.ColorTheme)), t.IsActive, t.ID)
	if err != nil {
		return writeErr("update testimonial", err)
	}
	notify(ctx, s.bus, TableTestimonials, livesync.ActionUpdate, t.ID)
	return nil
}

// SetActive toggles a testimonial's public visibility.
func (s *TestimonialStore) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE testimonials SET is_active = $1, updated_at = NOW() WHERE id = $2
	`, active, id)
	if err != nil {
		return writeErr("set testimonial active", err)
	}
	notify(ctx, s.bus, TableTestimonials, livesync.ActionUpdate, id)
	return nil
}

// Delete removes a testimonial by ID. Deleting an absent row is a no-op.
func (s *TestimonialStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete testimonial", err)
	}
	notify(ctx, s.bus, TableTestimonials, livesync.ActionDelete, id)
	return nil
}
