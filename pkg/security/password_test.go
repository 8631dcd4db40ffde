package security_test

import (
	"strings"
	"testing"

	"github.com/mateovidal/streamhaus-backend/pkg/config"
	"github.com/mateovidal/streamhaus-backend/pkg/security"
)

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := config.PasswordConfig{BcryptCost: 4}

	hash, err := security.HashPassword("very-secure-password", cfg)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword returned empty string")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt encoding, got %q", hash)
	}

	ok, err := security.VerifyPassword("very-secure-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error for valid hash: %v", err)
	}
	if !ok {
		t.Fatal("VerifyPassword failed for the correct password")
	}

	ok, err = security.VerifyPassword("bogus-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error for invalid password: %v", err)
	}
	if ok {
		t.Fatal("VerifyPassword returned true for incorrect password")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := security.HashPassword("", config.PasswordConfig{BcryptCost: 4}); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	hash, err := security.HashPassword("pw-with-default-cost", config.PasswordConfig{BcryptCost: 99})
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	ok, err := security.VerifyPassword("pw-with-default-cost", hash)
	if err != nil || !ok {
		t.Fatalf("verify after clamped cost failed: ok=%v err=%v", ok, err)
	}
}

func TestVerifyPasswordBadHash(t *testing.T) {
	if _, err := security.VerifyPassword("irrelevant", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestGenerateTempPassword(t *testing.T) {
	first, err := security.GenerateTempPassword(16)
	if err != nil {
		t.Fatalf("GenerateTempPassword returned error: %v", err)
	}
	if len(first) != 16 {
		t.Fatalf("expected 16 chars got %d", len(first))
	}

	second, err := security.GenerateTempPassword(16)
	if err != nil {
		t.Fatalf("GenerateTempPassword returned error: %v", err)
	}
	if first == second {
		t.Fatal("two generated passwords should not collide")
	}

	if _, err := security.GenerateTempPassword(0); err == nil {
		t.Fatal("expected error for non-positive length")
	}
}
