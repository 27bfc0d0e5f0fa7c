package gateway

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/accounting-service/internal/auth"
	"github.com/spec-kit/accounting-service/internal/observability"
)

const bearerPrefix = "Bearer "

// Filter is the edge authorization filter. It runs before any routing in
// the gateway: public paths pass through untouched, every other request
// must carry a valid bearer token. Verified requests are forwarded with
// the subject in the identity header; everything else is rejected with
// 401 and never forwarded.
type Filter struct {
	tokens  *auth.TokenManager
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewFilter constructs the filter.
func NewFilter(tokens *auth.TokenManager, logger *zap.Logger, metrics *observability.Metrics) *Filter {
	return &Filter{tokens: tokens, logger: logger, metrics: metrics}
}

// Handle evaluates the per-request authorization state machine.
func (f *Filter) Handle(c *fiber.Ctx) error {
	// The filter is the only writer of the identity header; anything a
	// caller sent themselves is dropped before classification.
	c.Request().Header.Del(auth.IdentityHeader)

	if IsPublicPath(c.Path()) {
		return c.Next()
	}

	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return f.reject(c, "missing or invalid authorization header")
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if !f.tokens.Validate(token) {
		return f.reject(c, "invalid token")
	}

	subject, err := f.tokens.ExtractSubject(token)
	if err != nil || subject == "" {
		return f.reject(c, "token carries no identity")
	}

	c.Request().Header.Set(auth.IdentityHeader, subject)
	return c.Next()
}

func (f *Filter) reject(c *fiber.Ctx, message string) error {
	if f.metrics != nil {
		f.metrics.RecordAuthRejection(c.Path(), message)
	}
	if f.logger != nil {
		f.logger.Warn("request rejected",
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.String("reason", message))
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
