// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// TextType tags a page text with the kind of copy it holds, so editors can
// pick an appropriate input control.
type TextType string

const (
	TextTypeTitle    TextType = "title"
	TextTypeSubtitle TextType = "subtitle"
	TextTypeBadge    TextType = "badge"
	TextTypeBody     TextType = "body"
	TextTypeButton   TextType = "button"
)

// PageText is one editable piece of page copy, addressed by section and key.
// The (section_key, text_key) pair is unique. Page texts have no visibility
// flag: they are always rendered.
type PageText struct {
	ID         uuid.UUID `json:"id"`
	SectionKey string    `json:"section_key"`
	TextKey    string    `json:"text_key"`
	TextValue  string    `json:"text_value"`
	TextType   TextType  `json:"text_type"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PageTexts groups text values by section and key for public rendering.
type PageTexts map[string]map[string]string

// Get returns the value for a section/key pair, or the fallback when the
// pair is missing or empty.
func (p PageTexts) Get(section, key, fallback string) string {
	if sec, ok := p[section]; ok {
		if v, ok := sec[key]; ok && v != "" {
			return v
		}
	}
	return fallback
}

// GroupPageTexts builds the section→key→value map from a flat list.
func GroupPageTexts(texts []PageText) PageTexts {
	grouped := make(PageTexts)
	for _, t := range texts {
		if _, ok := grouped[t.SectionKey]; !ok {
			grouped[t.SectionKey] = make(map[string]string)
		}
		grouped[t.SectionKey][t.TextKey] = t.TextValue
	}
	return grouped
}
