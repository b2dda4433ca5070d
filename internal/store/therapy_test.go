package store

import (
	"testing"

	"github.com/google/uuid"

	"dripcare/internal/models"
)

func TestTherapyStoreCreateRoundTripsListFields(t *testing.T) {
	db := testDB(t)
	s := NewTherapyStore(db, nil)
	ctx := testCtx()

	created, err := s.Create(ctx, &models.Therapy{
		Title:       "Inmunidad Plus",
		Subtitle:    "Refuerzo del sistema inmune",
		Description: "Cóctel de vitamina C y zinc en dosis altas.",
		Benefits:    []string{"Refuerza defensas", "Reduce fatiga"},
		Components:  []string{"Vitamina C 10g", "Zinc 10mg"},
		PhysiologicalEffects: []models.PhysiologicalEffect{
			{Title: "Antioxidante", Description: "Neutraliza radicales libres."},
		},
		ImportantConsiderations: "No recomendado en insuficiencia renal.",
		ColorTheme:              models.ThemeGreen,
		Icon:                    "shield",
		OrderPosition:           1,
		IsActive:                true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, TableTherapies, created.ID) })

	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}

	found, err := s.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected therapy, got nil")
	}
	if len(found.Benefits) != 2 || found.Benefits[0] != "Refuerza defensas" {
		t.Errorf("benefits: %v", found.Benefits)
	}
	if len(found.Components) != 2 {
		t.Errorf("components: %v", found.Components)
	}
	if len(found.PhysiologicalEffects) != 1 || found.PhysiologicalEffects[0].Title != "Antioxidante" {
		t.Errorf("physiological effects: %v", found.PhysiologicalEffects)
	}
}

func TestTherapyStoreCreateNormalizesUnknownTheme(t *testing.T) {
	db := testDB(t)
	s := NewTherapyStore(db, nil)
	ctx := testCtx()

	created, err := s.Create(ctx, &models.Therapy{
		Title:      "Detox",
		ColorTheme: models.ColorTheme("turquoise"),
		Icon:       "droplet",
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, TableTherapies, created.ID) })

	if created.ColorTheme != models.ThemeRose {
		t.Errorf("theme: got %q, want fallback %q", created.ColorTheme, models.ThemeRose)
	}
}

func TestTherapyStoreUpdateChangesOnlyTargetRow(t *testing.T) {
	db := testDB(t)
	s := NewTherapyStore(db, nil)
	ctx := testCtx()

	a, err := s.Create(ctx, &models.Therapy{Title: "A", ColorTheme: models.ThemeRose, Icon: "heart", IsActive: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := s.Create(ctx, &models.Therapy{Title: "B", ColorTheme: models.ThemeAmber, Icon: "heart", IsActive: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, TableTherapies, a.ID, b.ID) })

	a.Title = "A renovada"
	a.Benefits = []string{"nuevo beneficio"}
	if err := s.Update(ctx, a); err != nil {
		t.Fatalf("Update: %v", err)
	}

	gotA, _ := s.FindByID(ctx, a.ID)
	if gotA.Title != "A renovada" || len(gotA.Benefits) != 1 {
		t.Errorf("updated row: %+v", gotA)
	}
	gotB, _ := s.FindByID(ctx, b.ID)
	if gotB.Title != "B" {
		t.Errorf("untouched row changed: %+v", gotB)
	}
}

func TestTherapyStoreListOnlyActive(t *testing.T) {
	db := testDB(t)
	s := NewTherapyStore(db, nil)
	ctx := testCtx()

	hidden, err := s.Create(ctx, &models.Therapy{Title: "Oculta", ColorTheme: models.ThemeSlate, Icon: "sparkles", IsActive: false})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, TableTherapies, hidden.ID) })

	public, err := s.List(ctx, true)
	if err != nil {
		t.Fatalf("List(onlyActive): %v", err)
	}
	for _, th := range public {
		if th.ID == hidden.ID {
			t.Error("inactive therapy present in public list")
		}
	}
}
