package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var t0 = time.Unix(1_700_000_000, 0)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestTokenIssueVerify(t *testing.T) {
	svc := NewTokenService("test-secret", 24*time.Hour).WithClock(fixedClock(t0))

	tok, exp, err := svc.IssueLinkSession("ana@example.com", 12)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !exp.Equal(t0.Add(24 * time.Hour)) {
		t.Fatalf("exp = %v", exp)
	}

	claims, err := svc.WithClock(fixedClock(t0.Add(23 * time.Hour))).Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email != "ana@example.com" || !claims.IsUniqueAccessLink || claims.UserID != 12 {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestTokenExpiry(t *testing.T) {
	ttl := time.Hour
	svc := NewTokenService("test-secret", ttl).WithClock(fixedClock(t0))
	tok, _, err := svc.Issue("bob@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.WithClock(fixedClock(t0.Add(ttl - time.Second))).Verify(tok); err != nil {
		t.Fatalf("before expiry: %v", err)
	}
	_, err = svc.WithClock(fixedClock(t0.Add(ttl + time.Second))).Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("after expiry err = %v, want ErrTokenExpired", err)
	}
}

func TestTokenRejectsTampering(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour).WithClock(fixedClock(t0))
	tok, _, _ := svc.Issue("bob@example.com")

	other := NewTokenService("another-secret", time.Hour).WithClock(fixedClock(t0))
	if _, err := other.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("wrong secret err = %v", err)
	}
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("garbage err = %v", err)
	}
	if _, err := svc.Verify(""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("empty err = %v", err)
	}
}

func TestTokenRejectsNoneAlgorithm(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour).WithClock(fixedClock(t0))
	claims := Claims{
		Email:            "eve@example.com",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(t0.Add(time.Hour))},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := svc.Verify(unsigned); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("none alg err = %v", err)
	}
}

func TestTokenMissingClaims(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour).WithClock(fixedClock(t0))

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: "a@b.co"}).SignedString([]byte("test-secret"))
	if _, err := svc.Verify(noExp); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("missing exp err = %v", err)
	}

	noEmail, _, _ := svc.Issue("")
	if _, err := svc.Verify(noEmail); !errors.Is(err, ErrTokenNoIdentity) {
		t.Fatalf("missing email err = %v", err)
	}
}

func TestTokenLinkSessionNeedsUserID(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour).WithClock(fixedClock(t0))

	if _, _, err := svc.IssueLinkSession("ana@example.com", 0); err == nil {
		t.Fatal("link session without user id must not be issued")
	}

	// token lama tanpa id_usuario tidak boleh diterima
	legacy := Claims{
		Email:              "ana@example.com",
		IsUniqueAccessLink: true,
		RegisteredClaims:   jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(t0.Add(time.Hour))},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, legacy).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Verify(raw); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("legacy link token err = %v, want ErrTokenInvalid", err)
	}

	regular, _, _ := svc.Issue("bob@example.com")
	claims, err := svc.Verify(regular)
	if err != nil || claims.IsUniqueAccessLink || claims.UserID != 0 {
		t.Fatalf("regular token claims = %+v (%v)", claims, err)
	}
}
