package crypto_test

import (
	"strings"
	"testing"

	"github.com/itsSauraj/recipe-api/internal/common/crypto"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := &crypto.BcryptHasher{}

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if hash == "password123" || hash == "" {
		t.Fatal("expected hash to differ from plaintext")
	}

	if err := hasher.Compare(hash, "password123"); err != nil {
		t.Errorf("expected matching password to compare, got %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Error("expected mismatch for wrong password")
	}
}

func TestBcryptHasher_MalformedHashFails(t *testing.T) {
	hasher := &crypto.BcryptHasher{}

	if err := hasher.Compare("not-a-bcrypt-hash", "password123"); err == nil {
		t.Error("expected malformed hash to fail comparison")
	}
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := &crypto.BcryptHasher{}

	first, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first == second {
		t.Error("expected salted hashes of the same password to differ")
	}
	if !strings.HasPrefix(first, "$2") {
		t.Errorf("expected bcrypt prefix, got %s", first)
	}
}
