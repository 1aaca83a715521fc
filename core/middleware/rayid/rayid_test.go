package rayid_test

import (
	"net/http/httptest"
	"testing"

	"country-currency-api/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRayID_Generated(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		rid, _ := c.Locals(rayid.LocalsKey).(string)
		assert.NotEmpty(t, rid)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
}

func TestRayID_HonorsInbound(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "upstream-ray-1")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, "upstream-ray-1", resp.Header.Get(rayid.HeaderName))
}
