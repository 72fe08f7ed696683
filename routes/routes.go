package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"quickfix/config"
	controller "quickfix/controllers"
	"quickfix/middleware"
	"quickfix/store"
)

func SetupRoutes(app *fiber.App, st store.LeadStore, crmCfg *config.CRMConfig) {
	feed := controller.NewLeadFeed()

	contactController := controller.NewContactController(st, crmCfg, feed,
		log.New(os.Stdout, "CONTACT: ", log.LstdFlags))
	leadController := controller.NewLeadController(st, feed,
		log.New(os.Stdout, "LEAD: ", log.LstdFlags))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"checks": fiber.Map{
				"api":  "ok",
				"auth": "ok",
				"crm":  crmStatus(crmCfg),
			},
		})
	})

	// Public auth endpoints for the admin dashboard
	auth := app.Group("/api/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	auth.Post("/login", controller.Login)
	auth.Get("/verify", controller.Verify)
	auth.Post("/logout", controller.Logout)

	// Public contact/booking intake, rate limited per IP
	contact := app.Group("/api/contact", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	contact.Post("/", middleware.ContactRateLimiter(), contactController.SubmitContact)
	contact.Get("/", contactController.ContactInfo)

	// Protected CRM dashboard API
	api := app.Group("/api/v1/crm", middleware.Protected(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	leads := api.Group("/leads")
	leads.Get("/", leadController.GetLeads)
	leads.Post("/", leadController.CreateLead)

	// Live lead feed for the dashboard. Registered before the :id routes so
	// "feed" is never parsed as a lead ID.
	leads.Get("/feed", websocket.New(func(c *websocket.Conn) {
		feed.Handle(c)
	}))

	leads.Get("/:id", leadController.GetLead)
	leads.Put("/:id/status", leadController.UpdateLeadStatus)
	leads.Delete("/:id", leadController.DeleteLead)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})

	log.Println("Routes initialized successfully")
}

func crmStatus(crmCfg *config.CRMConfig) string {
	if crmCfg == nil {
		return "disabled"
	}
	return crmCfg.Provider
}
