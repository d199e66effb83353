package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id on responses and inbound requests.
const Header = "X-Ray-ID"

// LocalsKey is where the ray id is stored on the request context.
const LocalsKey = "ray_id"

// New returns a middleware that attaches a ray id to every request.
// An inbound X-Ray-ID is reused so ids correlate across services;
// otherwise a fresh UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
