package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"shambasoko/internal/config"
	"shambasoko/internal/http/handlers"
	applog "shambasoko/internal/log"
	"shambasoko/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN, cfg.SeedDemo)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and keep the surface opaque
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	// The frontend is served separately; every route is cross-origin.
	app.Use(cors.New())

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, validator.New())

	api := app.Group("/api")

	api.Post("/register", deps.AuthHandler.Register)
	api.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many attempts, try again later"})
		},
	}), deps.AuthHandler.Login)

	api.Get("/products", deps.ProductHandler.List)
	api.Post("/products", deps.ProductHandler.Create)
	api.Delete("/products/:id", deps.ProductHandler.Delete)

	api.Post("/offers", deps.OfferHandler.Submit)

	// Admin surface. Role-based access control is the boundary's concern and
	// lives in front of this process; handlers carry no extra checks.
	admin := api.Group("/admin")
	admin.Get("/stats", deps.AdminHandler.Stats)
	admin.Get("/users", deps.AdminHandler.Users)
	admin.Delete("/users/:id", deps.AdminHandler.DeleteUser)
	admin.Delete("/products/:id", deps.ProductHandler.Delete)
	admin.Get("/offers", deps.AdminHandler.ListOffers)
	admin.Put("/offers/:id", deps.AdminHandler.UpdateOffer)

	api.Get("/health", handlers.Health)

	log.Fatal(app.Listen(":" + cfg.Port))
}
