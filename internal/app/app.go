// app.go
//
// Fiber app assembly: global middleware, metrics, swagger and every route.
// Kept out of main so tests can build the full app in-process.

package app

import (
	"errors"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"gorm.io/gorm"

	"github.com/salonsuite/salon-api/internal/config"
	"github.com/salonsuite/salon-api/internal/handlers"
	"github.com/salonsuite/salon-api/internal/middleware"
	"github.com/salonsuite/salon-api/internal/services"
	"github.com/salonsuite/salon-api/internal/types"

	_ "github.com/salonsuite/salon-api/docs/api" // Swagger docs
)

// New assembles the fiber application with all middleware and routes.
func New(cfg *config.Config, db *gorm.DB, media *services.MediaStore) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		BodyLimit:    10 * 1024 * 1024, // image uploads
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New()) // the storefront SPA is served from another origin

	// Prometheus metrics
	prometheus := fiberprometheus.New("salon_api")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Version middleware
	app.Use(middleware.Version())

	// Handlers
	productHandler := &handlers.ProductHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db, Cfg: cfg}
	calendarHandler := &handlers.CalendarHandler{DB: db}
	uploadHandler := &handlers.UploadHandler{Media: media}
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Salon API is running")
	})
	app.Get("/health", healthHandler.Check)

	// Media
	app.Post("/upload", uploadHandler.Upload)

	// Catalog
	app.Post("/addproduct", productHandler.AddProduct)
	app.Post("/removeproduct", productHandler.RemoveProduct)
	app.Get("/allproducts", productHandler.AllProducts)

	// Auth + profile
	app.Post("/signup", userHandler.Signup)
	app.Post("/login", userHandler.Login)
	app.Get("/getuserinfo", middleware.RequireUser(cfg.JWTSecret), userHandler.GetUserInfo)
	app.Post("/getuserinfoadmin", userHandler.GetUserInfoAdmin)
	app.Post("/updateuserinfo", userHandler.UpdateUserInfo)

	// Booking calendar
	app.Post("/create-date", calendarHandler.CreateDate)
	app.Post("/add-timeslot", calendarHandler.AddTimeslot)
	app.Post("/get-date", calendarHandler.GetDate)
	app.Post("/book-treatment", calendarHandler.BookTreatment)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"errors":  "Resource not found",
		})
	})

	return app
}

// ErrorHandler translates uncaught errors into the response envelope.
// CustomError carries its own status and message; anything else is an
// opaque 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server error"

	var fiberErr *fiber.Error
	var customErr *types.CustomError
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"errors":  message,
	})
}
