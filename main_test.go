package main

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/configs"
	"personavix_backend/internals/testutil"
)

func clientIP(t *testing.T, cfg *configs.Config, forwarded string) string {
	t.Helper()
	app := newApp(cfg, testutil.NewTestLogger())
	app.Get("/ip", func(c *fiber.Ctx) error { return c.SendString(c.IP()) })

	req := httptest.NewRequest(fiber.MethodGet, "/ip", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, forwarded)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(raw)
}

func TestNewAppIgnoresForwardedForByDefault(t *testing.T) {
	if ip := clientIP(t, &configs.Config{}, "203.0.113.9"); ip == "203.0.113.9" {
		t.Fatal("X-Forwarded-For honoured without a trusted proxy")
	}
}

func TestNewAppHonoursTrustedProxy(t *testing.T) {
	// app.Test connects from 0.0.0.0
	cfg := &configs.Config{TrustedProxies: []string{"0.0.0.0"}}
	if ip := clientIP(t, cfg, "203.0.113.9"); ip != "203.0.113.9" {
		t.Fatalf("ip = %q, want forwarded address", ip)
	}

	cfg = &configs.Config{TrustedProxies: []string{"10.0.0.0/8"}}
	if ip := clientIP(t, cfg, "203.0.113.9"); ip == "203.0.113.9" {
		t.Fatal("X-Forwarded-For honoured from an untrusted peer")
	}
}
