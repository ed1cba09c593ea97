package middleware

import (
	"net/http/httptest"
	"testing"

	"momovender/src/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appWithRole(role string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals(principalKey, model.Principal{ID: 1, Role: role})
		return ctx.Next()
	})
	app.Get("/guarded", gate, func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	return app
}

func statusFor(t *testing.T, app *fiber.App) int {
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

// Payroll and the other admin surfaces must stay closed to branch managers.
func TestAdminOnlyRejectsManager(t *testing.T) {
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithRole("manager", AdminOnly())))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithRole("employee", AdminOnly())))
	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithRole("admin", AdminOnly())))
	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithRole("owner", AdminOnly())))
}

func TestManagerOnlyAdmitsManagerAndAdminTier(t *testing.T) {
	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithRole("manager", ManagerOnly())))
	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithRole("superadmin", ManagerOnly())))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithRole("employee", ManagerOnly())))
}

func TestTransactingOnlyRejectsUnknownRole(t *testing.T) {
	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithRole("employee", TransactingOnly())))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithRole("guest", TransactingOnly())))
}
