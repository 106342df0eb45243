package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalsKey).(string))
	})
	return app
}

func TestNew_Generates(t *testing.T) {
	resp, err := setupApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(Header)
	_, err = uuid.Parse(rid)
	assert.NoError(t, err)
}

func TestNew_ReusesIncoming(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(Header, "upstream-1")

	resp, err := setupApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-1", resp.Header.Get(Header))
}
