// Package meta serves the service-metadata root endpoint and the endpoint
// catalog reused by the 404 fallback.
package meta

import (
	"github.com/gofiber/fiber/v2"
)

// Version is the reported API version.
const Version = "1.0.0"

// Endpoints enumerates the public API surface, returned from the root
// endpoint and from the unknown-route fallback.
func Endpoints() fiber.Map {
	return fiber.Map{
		"refresh":            "POST /countries/refresh",
		"all_countries":      "GET /countries",
		"filter_by_region":   "GET /countries?region=Africa",
		"filter_by_currency": "GET /countries?currency=NGN",
		"sort_by_gdp":        "GET /countries?sort=gdp_desc",
		"single_country":     "GET /countries/:name",
		"delete_country":     "DELETE /countries/:name",
		"status":             "GET /status",
		"image":              "GET /countries/image",
	}
}

// Feature implements the loader.Feature interface.
type Feature struct{}

// NewFeature creates the meta feature.
func NewFeature() *Feature {
	return &Feature{}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "meta"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the root metadata route.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/", handleRoot)
	return nil
}

// handleRoot reports service metadata.
// @Summary Service metadata
// @Description Return the service banner, version and endpoint catalog.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Metadata"
// @Router / [get]
func handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Country Currency API is running!",
		"version":   Version,
		"endpoints": Endpoints(),
	})
}

// NotFoundHandler is the fallback for unmatched routes. Registered after
// every feature has loaded.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":               "Endpoint not found",
		"message":             "Please check the API documentation for valid endpoints",
		"available_endpoints": Endpoints(),
	})
}
