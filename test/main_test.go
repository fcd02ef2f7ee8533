package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"app/routes"
	"app/store"
)

func TestHealthRoute(t *testing.T) {
	store.Init(store.NewMemoryDriver(nil))
	defer store.Close()

	app := fiber.New()
	routes.SetupRoutes(app)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUnknownRouteNotFound(t *testing.T) {
	store.Init(store.NewMemoryDriver(nil))
	defer store.Close()

	app := fiber.New()
	routes.SetupRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/does-not-exist", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestAllReadAccessorsRespond(t *testing.T) {
	store.Init(store.NewMemoryDriver(nil))
	defer store.Close()

	app := fiber.New()
	routes.SetupRoutes(app)

	paths := []string{
		"/api/v1/inventory",
		"/api/v1/inventory/low-stock",
		"/api/v1/products",
		"/api/v1/recipes",
		"/api/v1/dashboard/summary",
		"/api/v1/dashboard/top-seller",
		"/api/v1/ai/predictions",
		"/api/v1/whatsapp/logs",
	}
	for _, path := range paths {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app test error for %s: %v", path, err)
		}
		assert.Equal(t, 200, resp.StatusCode, path)
	}
}
