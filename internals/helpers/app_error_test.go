package helper

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestAppErrorStatus(t *testing.T) {
	tests := map[error]int{
		NewUnauthenticated("x"): 401,
		NewUnauthorized("x"):    401,
		NewForbidden("x"):       403,
		NewNotFound("x"):        404,
		NewConflict("x"):        400,
		NewInvalid("x"):         422,
		NewInternal("x", nil):   500,
	}
	for err, want := range tests {
		ae, _ := AsAppError(err)
		if got := ae.Status(); got != want {
			t.Errorf("%s: status = %d, want %d", ae.Kind, got, want)
		}
	}
}

func TestFromDBError(t *testing.T) {
	wrapped := fmt.Errorf("query: %w", gorm.ErrRecordNotFound)
	if err := FromDBError(wrapped, "missing", "dup", "boom"); !IsKind(err, KindNotFound) {
		t.Fatalf("not found: %v", err)
	}
	if err := FromDBError(gorm.ErrDuplicatedKey, "missing", "dup", "boom"); !IsKind(err, KindConflict) {
		t.Fatalf("duplicate: %v", err)
	}
	if err := FromDBError(gorm.ErrForeignKeyViolated, "missing", "dup", "boom"); !IsKind(err, KindConflict) {
		t.Fatalf("foreign key: %v", err)
	}

	raw := errors.New("connection refused")
	err := FromDBError(raw, "missing", "dup", "boom")
	ae, ok := AsAppError(err)
	if !ok || ae.Kind != KindInternal || ae.Message != "boom" || !errors.Is(err, raw) {
		t.Fatalf("internal: %v", err)
	}

	// AppError yang sudah jadi diteruskan apa adanya
	forbidden := NewForbidden("nope")
	if got := FromDBError(forbidden, "missing", "dup", "boom"); got != forbidden {
		t.Fatalf("app error rewrapped: %v", got)
	}
	if FromDBError(nil, "a", "b", "c") != nil {
		t.Fatal("nil must stay nil")
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20, 20)
	if p.TotalPages != 3 || !p.HasNext || !p.HasPrev {
		t.Fatalf("middle page: %+v", p)
	}
	p = BuildPaginationFromPage(0, 1, 20, 0)
	if p.TotalPages != 1 || p.HasNext || p.HasPrev {
		t.Fatalf("empty: %+v", p)
	}
}
