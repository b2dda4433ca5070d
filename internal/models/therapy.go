// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PhysiologicalEffect is one titled entry in a therapy's effects list.
type PhysiologicalEffect struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Therapy is one IV-therapy treatment offered on the site. The list fields
// (benefits, components, physiological effects) are stored as JSONB.
type Therapy struct {
	ID                      uuid.UUID             `json:"id"`
	Title                   string                `json:"title"`
	Subtitle                string                `json:"subtitle"`
	Description             string                `json:"description"`
	Benefits                []string              `json:"benefits"`
	Components              []string              `json:"components"`
	PhysiologicalEffects    []PhysiologicalEffect `json:"physiological_effects"`
	ImportantConsiderations string                `json:"important_considerations"`
	ColorTheme              ColorTheme            `json:"color_theme"`
	Icon                    string                `json:"icon"`
	OrderPosition           int                   `json:"order_position"`
	IsActive                bool                  `json:"is_active"`
	CreatedAt               time.Time             `json:"created_at"`
	UpdatedAt               time.Time             `json:"updated_at"`
}

// TherapyIcons lists the icon tags the editor offers.
var TherapyIcons = []string{"sparkles", "droplet", "shield", "heart"}
