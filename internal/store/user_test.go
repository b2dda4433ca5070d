package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestUserStoreCreateAndAuthenticate(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := testCtx()

	email := "test-" + uuid.NewString()[:8] + "@dripandcare.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	created, err := s.Create(ctx, email, "correct horse battery", "Test Admin")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.PasswordHash == "correct horse battery" {
		t.Error("password stored in plaintext")
	}
	if !created.Needs2FASetup() {
		t.Error("new user should need 2FA setup")
	}

	found, err := s.FindByEmail(ctx, email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found == nil {
		t.Fatal("expected user, got nil")
	}

	if !s.CheckPassword(found, "correct horse battery") {
		t.Error("correct password rejected")
	}
	if s.CheckPassword(found, "wrong password") {
		t.Error("wrong password accepted")
	}
}

func TestUserStoreTOTPLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := testCtx()

	email := "test-totp-" + uuid.NewString()[:8] + "@dripandcare.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	u, err := s.Create(ctx, email, "pw-for-test-only", "TOTP User")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.SetTOTPSecret(ctx, u.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("SetTOTPSecret: %v", err)
	}
	if err := s.EnableTOTP(ctx, u.ID); err != nil {
		t.Fatalf("EnableTOTP: %v", err)
	}

	enabled, _ := s.FindByID(ctx, u.ID)
	if !enabled.TOTPEnabled || enabled.TOTPSecret == nil {
		t.Error("expected 2FA enabled with secret stored")
	}

	if err := s.ResetTOTP(ctx, u.ID); err != nil {
		t.Fatalf("ResetTOTP: %v", err)
	}
	reset, _ := s.FindByID(ctx, u.ID)
	if reset.TOTPEnabled || reset.TOTPSecret != nil {
		t.Error("expected 2FA cleared after reset")
	}
	if !reset.Needs2FASetup() {
		t.Error("reset user should need 2FA setup again")
	}
}

func TestUserStoreFindMissingReturnsNil(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := testCtx()

	u, err := s.FindByEmail(ctx, "nobody@dripandcare.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if u != nil {
		t.Error("expected nil for unknown email")
	}

	u, err = s.FindByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if u != nil {
		t.Error("expected nil for unknown id")
	}
}
