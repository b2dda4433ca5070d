// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Nutrient describes one nutrient used in the IV formulations, including
// its sanitary registry number. Nutrients are always shown publicly.
type Nutrient struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	ActiveIngredient string    `json:"active_ingredient"`
	Description      string    `json:"description"`
	RegistryNumber   string    `json:"registry_number"`
	OrderIndex       int       `json:"order_index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
