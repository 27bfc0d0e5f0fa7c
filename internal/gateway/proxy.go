package gateway

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
)

// Forward returns the terminal handler that proxies requests which passed
// the filter to the backend API service, preserving path and query.
func Forward(backendURL string) fiber.Handler {
	target := strings.TrimRight(backendURL, "/")
	return func(c *fiber.Ctx) error {
		return proxy.Do(c, target+c.OriginalURL())
	}
}
