package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/accounting-service/internal/api/http/handlers"
)

func newRouterTestApp() *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 0)
	RegisterRoutes(app, RouteConfig{
		Health:      handlers.NewHealthHandler("test", "dev", nil, nil),
		Auth:        handlers.NewAuthHandler(nil),
		Accountants: handlers.NewAccountantsHandler(nil),
		Clients:     handlers.NewClientsHandler(nil, nil),
		Documents:   handlers.NewDocumentsHandler(nil),
	})
	return app
}

func identityGuardStatus(t *testing.T, app *fiber.App, method, path string) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body.Error.Code
}

func TestLoginRoutesBypassIdentityGuard(t *testing.T) {
	app := newRouterTestApp()

	// Without the identity header these must reach their handlers (which
	// then reject the empty payload), never the guard's 401.
	for _, path := range []string{"/auth/login", "/auth/register", "/client/login"} {
		status, code := identityGuardStatus(t, app, http.MethodPost, path)
		assert.NotEqual(t, http.StatusUnauthorized, status, path)
		assert.NotEqual(t, "UNAUTHORIZED", code, path)
	}
}

func TestProtectedRoutesRequireIdentity(t *testing.T) {
	app := newRouterTestApp()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/client/create"},
		{http.MethodGet, "/client/load-clients"},
		{http.MethodGet, "/client/count"},
		{http.MethodPost, "/client/grant-access"},
		{http.MethodGet, "/user/load-details"},
		{http.MethodPost, "/document/upload"},
		{http.MethodGet, "/document/load"},
	}

	for _, tc := range cases {
		status, code := identityGuardStatus(t, app, tc.method, tc.path)
		assert.Equal(t, http.StatusUnauthorized, status, tc.path)
		assert.Equal(t, "UNAUTHORIZED", code, tc.path)
	}
}
