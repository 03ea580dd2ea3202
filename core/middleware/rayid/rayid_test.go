package rayid_test

import (
	"net/http/httptest"
	"testing"

	"object-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/ping", func(c *fiber.Ctx) error {
		rid, _ := c.Locals("ray_id").(string)
		return c.SendString(rid)
	})

	t.Run("GeneratesID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), 2000)
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("HonorsUpstreamID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(rayid.HeaderName, "upstream-trace-1")

		resp, err := app.Test(req, 2000)
		assert.NoError(t, err)
		assert.Equal(t, "upstream-trace-1", resp.Header.Get(rayid.HeaderName))
	})
}
