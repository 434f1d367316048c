package api

import (
	"ai-travel-planner/docs"
	"ai-travel-planner/internal/api/handlers"
	"ai-travel-planner/pkg/auth"
	"ai-travel-planner/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	tripHandler *handlers.TripHandler,
	healthHandler *handlers.HealthHandler,
	verifier *auth.TokenVerifier,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger
	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/health/ready", healthHandler.ReadinessCheck)

	requireAuth := middleware.AuthMiddleware(verifier, appLogger)

	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/signin", authHandler.SignIn)
	authGroup.Post("/signout", requireAuth, authHandler.SignOut)
	authGroup.Get("/session", requireAuth, authHandler.Session)

	// Trip routes (protected)
	trips := api.Group("/trips", requireAuth)
	trips.Post("/generate", tripHandler.Generate)
	trips.Get("", tripHandler.List)
	trips.Get("/:id", tripHandler.Get)

	return app
}
