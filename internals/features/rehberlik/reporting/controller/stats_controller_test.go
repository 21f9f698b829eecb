package controller

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"rehberlik_backend/internals/configs"
)

func newStatsApp() *fiber.App {
	configs.AppLocation = time.UTC
	app := fiber.New()
	ctrl := NewStatsController(nil)
	app.Get("/stats", ctrl.GetStats)
	return app
}

// Ters aralık (from > to) sessizce boş rapor üretmek yerine 400 döner.
func TestGetStatsRejectsInvertedRange(t *testing.T) {
	app := newStatsApp()

	req := httptest.NewRequest(fiber.MethodGet, "/stats?from=2025-04-10&to=2025-04-01", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek gönderilemedi: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, beklenen 400", resp.StatusCode)
	}
}

func TestGetStatsRejectsMalformedDate(t *testing.T) {
	app := newStatsApp()

	req := httptest.NewRequest(fiber.MethodGet, "/stats?from=10.04.2025", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek gönderilemedi: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, beklenen 400", resp.StatusCode)
	}
}
