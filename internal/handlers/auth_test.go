package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/config"
	"github.com/lorekeep/lorekeep/internal/handlers"
)

// TestSignupInitializesAuthorizer tests that the public signup route attempts
// authorizer initialization itself instead of failing on a fresh process. With
// nothing listening on the configured URL the attempt surfaces as the ping
// failure, never as an uninitialized client.
func TestSignupInitializesAuthorizer(t *testing.T) {
	cfg := &config.Config{
		AuthzURL:      "http://127.0.0.1:1",
		AuthzClientID: "test-client",
	}

	app := fiber.New()
	authHandler := &handlers.AuthHandler{Cfg: cfg}
	app.Post("/api/auth/signup", authHandler.Signup)

	raw, _ := json.Marshal(map[string]any{
		"email":    "fresh@example.com",
		"password": "Secret#123",
	})
	req := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("Expected status 400, got %d", resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	message, _ := result["message"].(string)
	if strings.Contains(message, "not initialized") {
		t.Errorf("Signup never attempted initialization: %q", message)
	}
	if !strings.Contains(message, "Authorizer unavailable") {
		t.Errorf("Expected the initialization failure to surface, got %q", message)
	}
}
