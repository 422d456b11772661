package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/darlculus/franciscancatholicschool-sub001/app/ledger"
	"github.com/darlculus/franciscancatholicschool-sub001/app/receipt"
	"github.com/darlculus/franciscancatholicschool-sub001/app/routes/auth"
)

// SetupPaymentsRoutes registers the ledger endpoints. Every route requires
// an authenticated principal with the bursar role.
func SetupPaymentsRoutes(app *fiber.App, svc *ledger.Service, registry *receipt.Registry) {
	group := app.Group("/payments", auth.AuthMiddleware, auth.RoleMiddleware(auth.RoleBursar))

	group.Get("/", func(c *fiber.Ctx) error {
		return GetPaymentsAPI(c, svc)
	})
	group.Post("/", func(c *fiber.Ctx) error {
		return CreatePaymentAPI(c, svc, registry)
	})
	group.Delete("/", func(c *fiber.Ctx) error {
		return ClearPaymentsAPI(c, svc)
	})
}
