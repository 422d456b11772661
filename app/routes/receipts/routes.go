package receipts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/darlculus/franciscancatholicschool-sub001/app/receipt"
	"github.com/darlculus/franciscancatholicschool-sub001/app/routes/auth"
	"github.com/darlculus/franciscancatholicschool-sub001/app/services"
)

// SetupReceiptsRoutes registers the receipt preview, PDF and email
// endpoints for the bursar dashboard's receipt form.
func SetupReceiptsRoutes(app *fiber.App, registry *receipt.Registry, renderer *receipt.Renderer, mailer services.Mailer) {
	group := app.Group("/receipts", auth.AuthMiddleware, auth.RoleMiddleware(auth.RoleBursar))

	group.Post("/preview", func(c *fiber.Ctx) error {
		return PreviewReceiptAPI(c, registry, renderer)
	})
	group.Post("/pdf", func(c *fiber.Ctx) error {
		return DownloadReceiptPDFAPI(c, registry, renderer)
	})
	group.Post("/email", func(c *fiber.Ctx) error {
		return EmailReceiptAPI(c, registry, renderer, mailer)
	})
	group.Delete("/session/:id", func(c *fiber.Ctx) error {
		return ResetReceiptSessionAPI(c, registry)
	})
}
