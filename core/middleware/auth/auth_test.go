package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/health", ok)
	app.Post("/check", ok)
	return app
}

func TestAuth(t *testing.T) {
	app := setupApp(Config{ApiKey: "secret", Public: []string{"/health"}})

	tests := []struct {
		name   string
		method string
		path   string
		key    string
		want   int
	}{
		{"ValidKey", "POST", "/check", "secret", fiber.StatusOK},
		{"WrongKey", "POST", "/check", "nope", fiber.StatusUnauthorized},
		{"NoKey", "POST", "/check", "", fiber.StatusUnauthorized},
		{"PublicPath", "GET", "/health", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(Header, tt.key)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	resp, err := setupApp(Config{}).Test(httptest.NewRequest("POST", "/check", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
