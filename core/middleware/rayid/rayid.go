// Package rayid assigns a unique request identifier to every request.
//
// The identifier is stored in the request locals under "ray_id" and echoed
// back in the X-Ray-ID response header. An inbound X-Ray-ID header is
// honored so upstream proxies can thread their own correlation IDs through.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the header used to propagate the RayID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber locals key the RayID is stored under.
	LocalsKey = "ray_id"
)

// New creates the RayID middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
