package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/darlculus/franciscancatholicschool-sub001/app/config"
	"github.com/darlculus/franciscancatholicschool-sub001/app/ledger"
	"github.com/darlculus/franciscancatholicschool-sub001/app/receipt"
	"github.com/darlculus/franciscancatholicschool-sub001/app/routes/auth"
	"github.com/darlculus/franciscancatholicschool-sub001/app/routes/dashboard"
	"github.com/darlculus/franciscancatholicschool-sub001/app/routes/payments"
	"github.com/darlculus/franciscancatholicschool-sub001/app/routes/receipts"
	"github.com/darlculus/franciscancatholicschool-sub001/app/services"
	"github.com/darlculus/franciscancatholicschool-sub001/app/storage"
	"github.com/darlculus/franciscancatholicschool-sub001/app/storage/jsonfile"
	"github.com/darlculus/franciscancatholicschool-sub001/app/storage/sqldb"
)

// errorHandler turns every failed handler into a JSON error response.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to West Africa Time
	loc, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		log.Printf("Warning: Failed to load Africa/Lagos location, falling back to UTC+1: %v", err)
		time.Local = time.FixedZone("WAT", 1*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Load configuration and connect storage
	config.Init()
	cfg := config.AppConfig

	var store storage.PaymentStore
	switch cfg.StorageBackend {
	case "json":
		jsonStore, err := jsonfile.New(cfg.LedgerPath)
		if err != nil {
			log.Fatal("Failed to open JSON ledger:", err)
		}
		store = jsonStore
	default:
		defer config.GetDB().Close()
		if err := sqldb.Migrate(config.GetDB()); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		store = sqldb.New(config.GetDB())
	}

	// Wire up the services
	ledgerSvc := ledger.NewService(store)

	registry := receipt.NewRegistry(30 * time.Minute)
	registry.StartSweeper(5 * time.Minute)

	renderer := &receipt.Renderer{
		CurrencySymbol: cfg.Currency.Symbol,
		CurrencyCode:   cfg.Currency.Code,
		SchoolName:     cfg.School.Name,
		SchoolAddress:  cfg.School.Address,
		SchoolPhone:    cfg.School.Phone,
		SchoolEmail:    cfg.School.Email,
	}

	mailer := services.NewMailer(cfg.SMTP)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      cfg.School.Name + " Bursar Portal",
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app)
	payments.SetupPaymentsRoutes(app, ledgerSvc, registry)
	dashboard.SetupDashboardRoutes(app, ledgerSvc)
	receipts.SetupReceiptsRoutes(app, registry, renderer, mailer)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
