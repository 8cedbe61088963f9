package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SetPrivateCache lets the browser reuse a list response for a short window
// before it refetches.
func SetPrivateCache(c *fiber.Ctx, seconds int) {
	if seconds <= 0 {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return
	}
	c.Set(fiber.HeaderCacheControl, "private, max-age="+strconv.Itoa(seconds))
}
