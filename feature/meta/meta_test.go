package meta_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"country-currency-api/feature/meta"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	assert.NoError(t, meta.NewFeature().Load(app))
	app.Use(meta.NotFoundHandler)
	return app
}

func TestRoot(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Country Currency API is running!", body["message"])
	assert.Equal(t, meta.Version, body["version"])

	endpoints, ok := body["endpoints"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "POST /countries/refresh", endpoints["refresh"])
	assert.Equal(t, "GET /countries/image", endpoints["image"])
}

func TestUnknownRoute(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Endpoint not found", body["error"])
	assert.NotEmpty(t, body["available_endpoints"])
}
