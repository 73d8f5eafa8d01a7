package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/testutil"
)

func TestResolveGuardsOnlyRoutesBehindIt(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedAgency(t, db, "North Agency", "north.example.com")

	app := fiber.New()
	app.Get("/approval/:token", func(c *fiber.Ctx) error {
		return c.SendString("review")
	})
	app.Use(NewTenantMiddleware(repository.NewAgencyRepository(db)).Resolve())
	app.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Approval links are opened from anywhere; an unregistered host must
	// still reach the handler.
	resp, err := app.Test(httptest.NewRequest("GET", "http://elsewhere.example.com/approval/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "http://elsewhere.example.com/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "http://north.example.com/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The port is stripped before the domain lookup.
	resp, err = app.Test(httptest.NewRequest("GET", "http://north.example.com:3000/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
