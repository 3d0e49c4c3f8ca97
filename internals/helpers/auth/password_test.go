package helper

import (
	"strings"
	"testing"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := &BcryptHasher{Cost: 4}

	digest, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "s3cret-pass" {
		t.Fatal("digest must not equal the secret")
	}
	if !h.Verify("s3cret-pass", digest) {
		t.Fatal("expected verify to accept the original secret")
	}
	if h.Verify("other-pass", digest) {
		t.Fatal("expected verify to reject a different secret")
	}
}

func TestBcryptHasherSaltsEveryCall(t *testing.T) {
	h := &BcryptHasher{Cost: 4}
	a, _ := h.Hash("same-secret")
	b, _ := h.Hash("same-secret")
	if a == b {
		t.Fatal("expected different digests for the same secret")
	}
}

func TestBcryptHasherMalformedDigest(t *testing.T) {
	h := &BcryptHasher{Cost: 4}
	for _, digest := range []string{"", "not-a-digest", "$2a$10$short"} {
		if h.Verify("anything", digest) {
			t.Fatalf("digest %q must not verify", digest)
		}
	}
}

func TestBcryptHasherLongSecret(t *testing.T) {
	h := &BcryptHasher{Cost: 4}
	long := strings.Repeat("a", 100)

	digest, err := h.Hash(long)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !h.Verify(long, digest) {
		t.Fatal("expected long secret to verify")
	}
	// differs only past byte 72
	if h.Verify(strings.Repeat("a", 99)+"b", digest) {
		t.Fatal("secrets differing after 72 bytes must not collide")
	}
}
