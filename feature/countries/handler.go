package countries

import (
	"net/url"

	"country-currency-api/core/logger"
	"country-currency-api/feature/countries/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for country records.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// nameParam returns the :name path parameter with percent-encoding removed,
// so "United%20States" matches the stored "United States". The raw value is
// kept when it is not valid percent-encoding.
func nameParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

// RegisterRoutes registers the countries routes. The /countries/image route
// must be registered before /countries/:name so "image" never matches as a
// country name.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/countries")
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/image", h.HandleSummaryImage)
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleGetByName)
	group.Delete("/:name", h.HandleDeleteByName)

	app.Get("/status", h.HandleStatus)
}

// HandleRefresh runs the refresh pipeline.
// @Summary Refresh country data
// @Description Fetch countries and exchange rates from the external sources, merge them and upsert every record.
// @Tags countries
// @Produce json
// @Success 200 {object} map[string]interface{} "Refresh result"
// @Failure 503 {object} map[string]string "External data source unavailable"
// @Router /countries/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	outcome, err := h.service.Refresh(c.Context())
	if err != nil {
		l.Error("Refresh failed", zap.Error(err))
		return err
	}

	return c.JSON(fiber.Map{
		"message":         "Countries data refreshed successfully",
		"total_processed": outcome.Processed,
	})
}

// HandleList returns all countries, optionally filtered and sorted.
// @Summary List countries
// @Description List stored countries with optional region/currency filters and sorting.
// @Tags countries
// @Produce json
// @Param region query string false "Filter by region (case-insensitive)"
// @Param currency query string false "Filter by currency code (case-insensitive)"
// @Param sort query string false "Sort key" Enums(name_asc, name_desc, gdp_asc, gdp_desc, population_asc, population_desc)
// @Success 200 {array} models.Country "Countries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /countries [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	q := models.ListQuery{
		Region:   c.Query("region"),
		Currency: c.Query("currency"),
		Sort:     c.Query("sort"),
	}

	countries, err := h.service.List(c.Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(countries)
}

// HandleSummaryImage serves the cached summary image.
// @Summary Get summary image
// @Description Return the PNG summary generated by the last refresh.
// @Tags countries
// @Produce png
// @Success 200 {file} binary "Summary image"
// @Failure 404 {object} map[string]string "Summary image not found"
// @Router /countries/image [get]
func (h *Handler) HandleSummaryImage(c *fiber.Ctx) error {
	data, err := h.service.SummaryImage(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(data)
}

// HandleGetByName returns a single country.
// @Summary Get country
// @Description Look up one country by case-insensitive name.
// @Tags countries
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} models.Country "Country"
// @Failure 404 {object} map[string]string "Country not found"
// @Router /countries/{name} [get]
func (h *Handler) HandleGetByName(c *fiber.Ctx) error {
	rec, err := h.service.GetByName(c.Context(), nameParam(c))
	if err != nil {
		return err
	}
	return c.JSON(rec)
}

// HandleDeleteByName deletes a single country.
// @Summary Delete country
// @Description Delete one country by case-insensitive name.
// @Tags countries
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Country not found"
// @Router /countries/{name} [delete]
func (h *Handler) HandleDeleteByName(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name := nameParam(c)
	if err := h.service.DeleteByName(c.Context(), name); err != nil {
		return err
	}

	l.Info("Country deleted", zap.String("name", name))
	return c.JSON(fiber.Map{
		"message": "Country deleted successfully",
	})
}

// HandleStatus reports the dataset status.
// @Summary Get status
// @Description Return the total record count and last refresh timestamp.
// @Tags status
// @Produce json
// @Success 200 {object} models.Status "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	status, err := h.service.Status(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(status)
}
