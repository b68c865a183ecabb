package util

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hasher := NewPasswordHasher(4)

	digest, err := hasher.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "" || digest == "s3cret-pass" {
		t.Fatalf("expected digest to be populated and not the plaintext")
	}
	if !hasher.Verify("s3cret-pass", digest) {
		t.Fatalf("expected verification to succeed for the right password")
	}
	if hasher.Verify("wrong-pass", digest) {
		t.Fatalf("expected verification to fail for the wrong password")
	}
}

func TestHashEmptyPassword(t *testing.T) {
	hasher := NewPasswordHasher(4)
	if _, err := hasher.Hash(""); err == nil {
		t.Fatalf("expected error when password empty")
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher(4)
	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$xx$broken"} {
		if hasher.Verify("anything", digest) {
			t.Fatalf("expected verification to fail for digest %q", digest)
		}
	}
}

func TestHashesAreSalted(t *testing.T) {
	hasher := NewPasswordHasher(4)
	first, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected two digests of the same password to differ")
	}
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)
	digest, err := hasher.Hash("pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !hasher.Verify("pw", digest) {
		t.Fatalf("expected verification to succeed")
	}
}
