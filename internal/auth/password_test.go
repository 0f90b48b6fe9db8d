package auth

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("CheckPassword should accept the original password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("CheckPassword should reject a wrong password")
	}
	if CheckPassword(hash, "") {
		t.Error("CheckPassword should reject an empty password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("same input", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("same input", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}
