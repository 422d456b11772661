package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/darlculus/franciscancatholicschool-sub001/app/ledger"
	"github.com/darlculus/franciscancatholicschool-sub001/app/routes/auth"
)

// SetupDashboardRoutes registers the bursar dashboard stats endpoint.
func SetupDashboardRoutes(app *fiber.App, svc *ledger.Service) {
	app.Get("/dashboard/stats", auth.AuthMiddleware, auth.RoleMiddleware(auth.RoleBursar), func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, svc)
	})
}

// GetDashboardStatsAPI returns today's figures in the server's local date.
func GetDashboardStatsAPI(c *fiber.Ctx, svc *ledger.Service) error {
	stats, err := svc.DashboardStats(time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard statistics")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
