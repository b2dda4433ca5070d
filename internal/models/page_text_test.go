package models

import "testing"

func TestGroupPageTexts(t *testing.T) {
	texts := []PageText{
		{SectionKey: "hero", TextKey: "title", TextValue: "DRIP & CARE"},
		{SectionKey: "hero", TextKey: "subtitle", TextValue: "by Daniela Rufs"},
		{SectionKey: "contacto", TextKey: "badge", TextValue: "Estamos aquí para ti"},
	}

	grouped := GroupPageTexts(texts)

	if got := grouped.Get("hero", "title", ""); got != "DRIP & CARE" {
		t.Errorf("hero/title: got %q", got)
	}
	if got := grouped.Get("contacto", "badge", ""); got != "Estamos aquí para ti" {
		t.Errorf("contacto/badge: got %q", got)
	}
}

func TestPageTextsGetFallback(t *testing.T) {
	grouped := PageTexts{
		"hero": {"title": "DRIP & CARE", "empty": ""},
	}

	if got := grouped.Get("hero", "missing", "fallback"); got != "fallback" {
		t.Errorf("missing key: got %q, want fallback", got)
	}
	if got := grouped.Get("nope", "title", "fallback"); got != "fallback" {
		t.Errorf("missing section: got %q, want fallback", got)
	}
	if got := grouped.Get("hero", "empty", "fallback"); got != "fallback" {
		t.Errorf("empty value: got %q, want fallback", got)
	}
}
