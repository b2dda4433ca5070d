// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for testimonials.
const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial is one client quote shown on the landing page, newest first.
type Testimonial struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	Rating     int        `json:"rating"`
	ColorTheme ColorTheme `json:"color_theme"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ClampedRating bounds the stored rating to [MinRating, MaxRating] so star
// rendering iterates a sane count even if an out-of-range value was written.
func (t *Testimonial) ClampedRating() int {
	if t.Rating < MinRating {
		return MinRating
	}
	if t.Rating > MaxRating {
		return MaxRating
	}
	return t.Rating
}
