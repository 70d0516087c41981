package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the ray ID.
const HeaderName = "X-Ray-ID"

// LocalKey is the fiber.Ctx locals key the ray ID is stored under.
const LocalKey = "ray_id"

// New returns a middleware that assigns a unique ray ID to every request.
// An incoming X-Ray-ID header is honored so upstream proxies can correlate.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(LocalKey, id)
		c.Set(HeaderName, id)

		return c.Next()
	}
}
