package server

import (
	"errors"

	"country-currency-api/core/apperr"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewErrorHandler returns the Fiber catch-all error handler. It maps the
// application error taxonomy onto status codes; anything unrecognized
// becomes a 500 whose detail is exposed only outside production.
func NewErrorHandler(cfg Config, log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			src *apperr.SourceUnavailable
			nf  *apperr.NotFound
			se  *apperr.StoreError
			ve  *apperr.ValidationError
			fe  *fiber.Error
		)

		switch {
		case errors.As(err, &src):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":   "External data source unavailable",
				"details": "Could not fetch data from " + src.Endpoint,
			})
		case errors.As(err, &nf):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": nf.Error(),
			})
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": ve.Error(),
			})
		case errors.As(err, &se):
			log.Error("store failure", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		case errors.As(err, &fe):
			return c.Status(fe.Code).JSON(fiber.Map{
				"error": fe.Message,
			})
		}

		log.Error("unexpected error", zap.Error(err))
		message := "Something went wrong"
		if !cfg.IsProduction() {
			message = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": message,
		})
	}
}
