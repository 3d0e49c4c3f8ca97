package helper

import (
	"math"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolve(t *testing.T, query string) (Paging, bool) {
	t.Helper()
	var (
		got Paging
		ok  bool
	)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got, ok = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/"+query, nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	return got, ok
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		query string
		want  Paging
	}{
		{"?page=1&per_page=2", Paging{Page: 1, PerPage: 2, Offset: 0, Limit: 2}},
		{"?page=3", Paging{Page: 3, PerPage: 20, Offset: 40, Limit: 20}},
		{"?limit=500", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"?page=-4&per_page=abc", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := resolve(t, tt.query)
			if !ok || got != tt.want {
				t.Fatalf("got %+v (ok=%v), want %+v", got, ok, tt.want)
			}
		})
	}

	if _, ok := resolve(t, ""); ok {
		t.Fatal("no paging params should return the whole list")
	}
}

func TestResolvePagingClampsHugePage(t *testing.T) {
	for _, page := range []string{"9223372036854775807", "99999999999999999999999", strconv.Itoa(math.MaxInt32)} {
		t.Run(page, func(t *testing.T) {
			got, ok := resolve(t, "?per_page=100&page="+page)
			if !ok {
				t.Fatal("paging not resolved")
			}
			if got.Offset < 0 || got.Offset > math.MaxInt32 {
				t.Fatalf("offset overflowed: %+v", got)
			}
			if got.Offset != (got.Page-1)*got.PerPage {
				t.Fatalf("offset out of step with page: %+v", got)
			}
		})
	}
}
