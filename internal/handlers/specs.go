// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"dripcare/internal/editor"
	"dripcare/internal/models"
)

// Validation limits for editor submissions.
const (
	maxTitleLen   = 300
	maxNameLen    = 120
	maxKeyLen     = 100
	maxBodyLen    = 10_000
	maxContentLen = 2_000
)

var colorThemeOptions = []string{
	string(models.ThemeRose), string(models.ThemeAmber),
	string(models.ThemeGreen), string(models.ThemeSlate),
}

var textTypeOptions = []string{
	string(models.TextTypeTitle), string(models.TextTypeSubtitle),
	string(models.TextTypeBadge), string(models.TextTypeBody),
	string(models.TextTypeButton),
}

// Form specs for every editable entity kind. Each admin mutation parses
// its submission through one of these before touching a store.
var (
	pageTextSpec = &editor.FormSpec{
		Entity: "page_texts",
		Fields: []editor.FieldSpec{
			{Name: "section_key", Label: "Sección", Kind: editor.KindText, Required: true, MaxLen: maxKeyLen},
			{Name: "text_key", Label: "Clave", Kind: editor.KindText, Required: true, MaxLen: maxKeyLen},
			{Name: "text_value", Label: "Texto", Kind: editor.KindMultiline, MaxLen: maxBodyLen},
			{Name: "text_type", Label: "Tipo", Kind: editor.KindSelect, Options: textTypeOptions, Fallback: string(models.TextTypeBody)},
			{Name: "order_index", Label: "Orden", Kind: editor.KindNumber},
		},
	}

	therapySpec = &editor.FormSpec{
		Entity: "therapies",
		Fields: []editor.FieldSpec{
			{Name: "title", Label: "Título", Kind: editor.KindText, Required: true, MaxLen: maxTitleLen},
			{Name: "subtitle", Label: "Subtítulo", Kind: editor.KindText, MaxLen: maxTitleLen},
			{Name: "description", Label: "Descripción", Kind: editor.KindMultiline, MaxLen: maxBodyLen},
			{Name: "benefits", Label: "Beneficios", Kind: editor.KindList},
			{Name: "components", Label: "Componentes", Kind: editor.KindList},
			{Name: "physiological_effects", Label: "Efectos fisiológicos", Kind: editor.KindPairList},
			{Name: "important_considerations", Label: "Consideraciones importantes", Kind: editor.KindMultiline, MaxLen: maxBodyLen},
			{Name: "color_theme", Label: "Tema de color", Kind: editor.KindSelect, Options: colorThemeOptions, Fallback: string(models.ThemeRose)},
			{Name: "icon", Label: "Ícono", Kind: editor.KindSelect, Options: models.TherapyIcons, Fallback: "droplet"},
			{Name: "is_active", Label: "Visible", Kind: editor.KindBool},
		},
	}

	nutrientSpec = &editor.FormSpec{
		Entity: "nutrients",
		Fields: []editor.FieldSpec{
			{Name: "name", Label: "Nombre", Kind: editor.KindText, Required: true, MaxLen: maxNameLen},
			{Name: "active_ingredient", Label: "Ingrediente activo", Kind: editor.KindText, MaxLen: maxTitleLen},
			{Name: "description", Label: "Descripción", Kind: editor.KindMultiline, MaxLen: maxBodyLen},
			{Name: "registry_number", Label: "Registro sanitario", Kind: editor.KindText, MaxLen: maxKeyLen},
			{Name: "order_index", Label: "Orden", Kind: editor.KindNumber},
		},
	}

	faqSpec = &editor.FormSpec{
		Entity: "faq_items",
		Fields: []editor.FieldSpec{
			{Name: "question", Label: "Pregunta", Kind: editor.KindText, Required: true, MaxLen: maxTitleLen},
			{Name: "answer", Label: "Respuesta", Kind: editor.KindMultiline, Required: true, MaxLen: maxBodyLen},
			{Name: "is_active", Label: "Visible", Kind: editor.KindBool},
		},
	}

	glossarySpec = &editor.FormSpec{
		Entity: "glossary_terms",
		Fields: []editor.FieldSpec{
			{Name: "term", Label: "Término", Kind: editor.KindText, Required: true, MaxLen: maxNameLen},
			{Name: "definition", Label: "Definición", Kind: editor.KindMultiline, Required: true, MaxLen: maxBodyLen},
			{Name: "is_active", Label: "Visible", Kind: editor.KindBool},
		},
	}

	nursingServiceSpec = &editor.FormSpec{
		Entity: "nursing_services",
		Fields: []editor.FieldSpec{
			{Name: "title", Label: "Título", Kind: editor.KindText, Required: true, MaxLen: maxTitleLen},
			{Name: "description", Label: "Descripción", Kind: editor.KindMultiline, MaxLen: maxBodyLen},
			{Name: "price", Label: "Precio", Kind: editor.KindNumber},
			{Name: "price_unit", Label: "Unidad", Kind: editor.KindText, MaxLen: maxKeyLen},
			{Name: "color", Label: "Color", Kind: editor.KindColor},
			{Name: "order_index", Label: "Orden", Kind: editor.KindNumber},
		},
	}

	testimonialSpec = &editor.FormSpec{
		Entity: "testimonials",
		Fields: []editor.FieldSpec{
			{Name: "name", Label: "Nombre", Kind: editor.KindText, Required: true, MaxLen: maxNameLen},
			{Name: "role", Label: "Rol", Kind: editor.KindText, MaxLen: maxNameLen},
			{Name: "content", Label: "Testimonio", Kind: editor.KindMultiline, Required: true, MaxLen: maxContentLen},
			{Name: "rating", Label: "Calificación", Kind: editor.KindNumber, Required: true, Min: models.MinRating, Max: models.MaxRating},
			{Name: "color_theme", Label: "Tema de color", Kind: editor.KindSelect, Options: colorThemeOptions, Fallback: string(models.ThemeRose)},
			{Name: "is_active", Label: "Visible", Kind: editor.KindBool},
		},
	}
)

// formSpecs maps entity path segments to their specs, for the editor
// state endpoints that take the entity from the URL.
var formSpecs = map[string]*editor.FormSpec{
	"page_texts":       pageTextSpec,
	"therapies":        therapySpec,
	"nutrients":        nutrientSpec,
	"faq_items":        faqSpec,
	"glossary_terms":   glossarySpec,
	"nursing_services": nursingServiceSpec,
	"testimonials":     testimonialSpec,
}
