package helper

import (
	"errors"
	"fmt"
	"testing"

	"personavix_backend/internals/constants"
)

func TestGuardGrid(t *testing.T) {
	type check struct {
		name string
		fn   func(p, a int) error
		want func(p, a int) bool
	}
	checks := []check{
		{"admin", RequireAdmin, func(p, a int) bool { return a == 1 && p == 3 }},
		{"manager", RequireManager, func(p, a int) bool { return a == 1 && (p == 2 || p == 3) }},
		{"user", RequireUser, func(p, a int) bool { return a == 1 && p >= 1 && p <= 3 }},
	}

	for _, ck := range checks {
		for p := -1; p <= 4; p++ {
			for _, a := range []int{0, 1, 2} {
				t.Run(fmt.Sprintf("%s/p=%d/a=%d", ck.name, p, a), func(t *testing.T) {
					err := ck.fn(p, a)
					if ck.want(p, a) {
						if err != nil {
							t.Fatalf("expected allow, got %v", err)
						}
						return
					}
					if err == nil {
						t.Fatal("expected deny")
					}
					if a != 1 && !errors.Is(err, ErrNoAccess) {
						t.Fatalf("disabled account err = %v, want ErrNoAccess", err)
					}
					if a == 1 && !errors.Is(err, ErrPermissionDenied) {
						t.Fatalf("err = %v, want ErrPermissionDenied", err)
					}
				})
			}
		}
	}
}

func TestGuardStatuses(t *testing.T) {
	if got := ErrNoAccess.(interface{ Status() int }).Status(); got != 401 {
		t.Fatalf("no access status = %d", got)
	}
	if got := ErrPermissionDenied.(interface{ Status() int }).Status(); got != 403 {
		t.Fatalf("permission denied status = %d", got)
	}
}

func TestAuthContextScoping(t *testing.T) {
	link := AuthContext{UserID: 7, Permission: 1, AccessFlag: 0, IsLinkSession: true}
	if !link.CanActOn(7) || link.CanActOn(8) {
		t.Fatal("link session must be confined to its own user")
	}
	if link.Require(constants.TierUser) == nil {
		t.Fatal("disabled link respondent must not pass the user tier")
	}

	admin := AuthContext{UserID: 1, Permission: 3, AccessFlag: 1}
	if !admin.IsAdmin() || !admin.CanActOn(99) {
		t.Fatal("admin should act on any user")
	}
}
