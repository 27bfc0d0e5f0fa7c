package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/accounting-service/pkg/util/errorutil"
)

// IdentityHeader carries the verified username from the gateway filter to
// backend handlers. The filter is the only writer; backend services must
// never accept it directly from external clients.
const IdentityHeader = "X-User-Name"

const identityKey = "auth_identity"

// RequireIdentity ensures the gateway injected a verified username and
// stores it in the request locals. Backend services do not re-verify the
// token itself; the filter is the sole trust boundary.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Get(IdentityHeader)
		if username == "" {
			return apperrors.NewUnauthorized("missing identity header")
		}
		c.Locals(identityKey, username)
		return c.Next()
	}
}

// UsernameFromContext retrieves the verified username for the request.
func UsernameFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return "", false
	}
	username, ok := val.(string)
	return username, ok && username != ""
}
